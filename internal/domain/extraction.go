package domain

// TermCandidate is a glossary entry proposed by the language model during
// an import. It carries no identity, status or attribution until accepted.
type TermCandidate struct {
	Term            string   `json:"term"`
	Context         string   `json:"context"`
	DefinitionDe    string   `json:"definitionDe"`
	DefinitionEn    string   `json:"definitionEn"`
	EinfacheSprache string   `json:"einfacheSprache"`
	Eselsleitern    []string `json:"eselsleitern"`
	Source          string   `json:"source"`
}

// TermProposal is a drafted definition for a single headword.
type TermProposal struct {
	DefinitionDe    string   `json:"definitionDe"`
	DefinitionEn    string   `json:"definitionEn"`
	EinfacheSprache string   `json:"einfacheSprache"`
	Eselsleitern    []string `json:"eselsleitern"`
	Context         string   `json:"context"`
}
