package domain

import "strings"

// TermFilter holds the three independent predicates of the glossary list view.
// An empty field disables that predicate.
type TermFilter struct {
	Search  string
	Letter  string
	Context string
}

// IsEmpty reports whether no predicate is active.
func (f TermFilter) IsEmpty() bool {
	return f.Search == "" && f.Letter == "" && f.Context == ""
}

// FilterTerms projects terms through f without mutating the input.
//
// Predicates are ANDed and applied in this order: context (exact,
// case-insensitive), starting letter (uppercased term must start with
// Letter, compared case-sensitively), free-text search (case-insensitive
// substring of term, either definition, or context). The relative order of
// the input is kept.
func FilterTerms(terms []GlossaryTerm, f TermFilter) []GlossaryTerm {
	out := make([]GlossaryTerm, 0, len(terms))

	ctx := strings.ToLower(f.Context)
	q := strings.ToLower(f.Search)

	for _, t := range terms {
		if f.Context != "" && strings.ToLower(t.Context) != ctx {
			continue
		}
		if f.Letter != "" && !strings.HasPrefix(strings.ToUpper(t.Term), f.Letter) {
			continue
		}
		if f.Search != "" && !matchesSearch(t, q) {
			continue
		}
		out = append(out, t)
	}

	return out
}

func matchesSearch(t GlossaryTerm, q string) bool {
	return strings.Contains(strings.ToLower(t.Term), q) ||
		strings.Contains(strings.ToLower(t.DefinitionDe), q) ||
		strings.Contains(strings.ToLower(t.DefinitionEn), q) ||
		strings.Contains(strings.ToLower(t.Context), q)
}
