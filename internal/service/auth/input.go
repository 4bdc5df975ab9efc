package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate checks the input against the allowed email domain and password policy.
func (i RegisterInput) Validate(allowedDomain string, minPassword int) error {
	var errs []domain.FieldError

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(i.Email) > 254 || !strings.Contains(i.Email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	case !strings.EqualFold(domain.EmailDomain(i.Email), allowedDomain):
		errs = append(errs, domain.FieldError{Field: "email", Message: "only @" + allowedDomain + " addresses may register"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if utf8.RuneCountInString(i.Password) < minPassword {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if utf8.RuneCountInString(i.DisplayName) > 100 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
