package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TermStatus is the review state of a glossary term.
type TermStatus string

const (
	TermStatusPending  TermStatus = "pending"
	TermStatusApproved TermStatus = "approved"
)

func (s TermStatus) String() string { return string(s) }

func (s TermStatus) IsValid() bool {
	switch s {
	case TermStatusPending, TermStatusApproved:
		return true
	}
	return false
}

// DefaultContext is the category label used when a term has no context.
const DefaultContext = "Allgemein"

// GlossaryTerm is one entry of the shared glossary.
// The (Term, Context) pair is not unique: the same headword may legitimately
// appear in several contexts, and duplicates are only flagged to the user.
type GlossaryTerm struct {
	ID              uuid.UUID
	Term            string
	Context         string
	DefinitionDe    string
	DefinitionEn    string
	EinfacheSprache string
	Eselsleitern    []string
	Source          string
	SourceURL       string
	Status          TermStatus
	CreatedBy       string
	CreatedByName   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ReviewedBy      *string
}

// CategoryOrDefault returns the term's context, or DefaultContext when blank.
func (t GlossaryTerm) CategoryOrDefault() string {
	if strings.TrimSpace(t.Context) == "" {
		return DefaultContext
	}
	return t.Context
}

// TermPatch lists the fields of a partial term update. Nil fields are left untouched.
type TermPatch struct {
	Term            *string
	Context         *string
	DefinitionDe    *string
	DefinitionEn    *string
	EinfacheSprache *string
	Eselsleitern    *[]string
	Source          *string
	SourceURL       *string
	Status          *TermStatus
	ReviewedBy      *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p TermPatch) IsEmpty() bool {
	return p.Term == nil && p.Context == nil && p.DefinitionDe == nil &&
		p.DefinitionEn == nil && p.EinfacheSprache == nil && p.Eselsleitern == nil &&
		p.Source == nil && p.SourceURL == nil && p.Status == nil && p.ReviewedBy == nil
}

// DuplicateKey groups terms that the deduplication job treats as copies:
// trimmed, lowercased term and context.
func DuplicateKey(term, context string) string {
	return strings.ToLower(strings.TrimSpace(term)) + "|" + strings.ToLower(strings.TrimSpace(context))
}
