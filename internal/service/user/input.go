package user

import (
	"strings"
	"unicode/utf8"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarID    *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName == nil && i.AvatarID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if i.DisplayName != nil {
		name := strings.TrimSpace(*i.DisplayName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
		} else if utf8.RuneCountInString(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
		}
	}

	if i.AvatarID != nil && !domain.IsValidAvatar(*i.AvatarID) {
		errs = append(errs, domain.FieldError{Field: "avatar_id", Message: "unknown avatar"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
