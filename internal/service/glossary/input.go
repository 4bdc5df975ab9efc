package glossary

import (
	"strings"
	"unicode/utf8"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

const (
	maxTermLen       = 200
	maxContextLen    = 100
	maxDefinitionLen = 5000
	maxURLLen        = 2048
)

// TermInput holds the editable fields of a new term.
type TermInput struct {
	Term            string
	Context         string
	DefinitionDe    string
	DefinitionEn    string
	EinfacheSprache string
	Eselsleitern    []string
	Source          string
	SourceURL       string
}

func (i TermInput) normalize() TermInput {
	i.Term = strings.TrimSpace(i.Term)
	i.Context = strings.TrimSpace(i.Context)
	i.DefinitionDe = strings.TrimSpace(i.DefinitionDe)
	i.DefinitionEn = strings.TrimSpace(i.DefinitionEn)
	i.EinfacheSprache = strings.TrimSpace(i.EinfacheSprache)
	i.Source = strings.TrimSpace(i.Source)
	i.SourceURL = strings.TrimSpace(i.SourceURL)
	if i.Eselsleitern == nil {
		i.Eselsleitern = []string{}
	}
	return i
}

// Validate enforces the minimum fields of a usable entry.
func (i TermInput) Validate() error {
	var errs []domain.FieldError

	errs = checkRequired(errs, "term", i.Term, maxTermLen)
	errs = checkRequired(errs, "definition_de", i.DefinitionDe, maxDefinitionLen)
	errs = checkOptional(errs, "context", i.Context, maxContextLen)
	errs = checkOptional(errs, "definition_en", i.DefinitionEn, maxDefinitionLen)
	errs = checkOptional(errs, "einfache_sprache", i.EinfacheSprache, maxDefinitionLen)
	errs = checkOptional(errs, "source_url", i.SourceURL, maxURLLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput lists the fields of a partial edit. Nil fields are left unchanged.
type UpdateInput struct {
	Term            *string
	Context         *string
	DefinitionDe    *string
	DefinitionEn    *string
	EinfacheSprache *string
	Eselsleitern    *[]string
	Source          *string
	SourceURL       *string
}

// Validate rejects blank required fields and empty edits.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Term != nil {
		errs = checkRequired(errs, "term", strings.TrimSpace(*i.Term), maxTermLen)
	}
	if i.DefinitionDe != nil {
		errs = checkRequired(errs, "definition_de", strings.TrimSpace(*i.DefinitionDe), maxDefinitionLen)
	}
	if i.Context != nil {
		errs = checkOptional(errs, "context", *i.Context, maxContextLen)
	}
	if i.SourceURL != nil {
		errs = checkOptional(errs, "source_url", *i.SourceURL, maxURLLen)
	}

	if len(errs) == 0 && i.patch().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.TermPatch {
	return domain.TermPatch{
		Term:            trimmed(i.Term),
		Context:         trimmed(i.Context),
		DefinitionDe:    trimmed(i.DefinitionDe),
		DefinitionEn:    trimmed(i.DefinitionEn),
		EinfacheSprache: trimmed(i.EinfacheSprache),
		Eselsleitern:    i.Eselsleitern,
		Source:          trimmed(i.Source),
		SourceURL:       trimmed(i.SourceURL),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func checkRequired(errs []domain.FieldError, field, v string, max int) []domain.FieldError {
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return checkOptional(errs, field, v, max)
}

func checkOptional(errs []domain.FieldError, field, v string, max int) []domain.FieldError {
	if utf8.RuneCountInString(v) > max {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
