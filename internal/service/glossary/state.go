package glossary

import (
	"sync"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// View keeps the last delivered snapshots of the term and question
// subscriptions. Filtering is a pure projection over the snapshot and never
// triggers a fetch.
type View struct {
	mu        sync.RWMutex
	terms     []domain.GlossaryTerm
	questions []domain.QuizQuestion
	ready     bool
}

// NewView returns an empty View.
func NewView() *View {
	return &View{}
}

// SetTerms replaces the term snapshot.
func (v *View) SetTerms(terms []domain.GlossaryTerm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.terms = terms
	v.ready = true
}

// SetQuestions replaces the saved-question snapshot.
func (v *View) SetQuestions(questions []domain.QuizQuestion) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.questions = questions
}

// Ready reports whether a term snapshot has been delivered.
func (v *View) Ready() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ready
}

// Terms returns the current term snapshot. Callers must not modify it.
func (v *View) Terms() []domain.GlossaryTerm {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.terms
}

// Questions returns the current saved-question snapshot. Callers must not modify it.
func (v *View) Questions() []domain.QuizQuestion {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.questions
}

// Visible projects the term snapshot through f.
func (v *View) Visible(f domain.TermFilter) []domain.GlossaryTerm {
	return domain.FilterTerms(v.Terms(), f)
}
