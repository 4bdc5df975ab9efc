package extraction

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/llmjson"
)

const (
	opProposeTerm  = "propose_term"
	maxProposeTerm = 200
)

// ProposeTerm drafts definitions, a plain-language gloss and mnemonics for
// one headword. Unlike the bulk extractions an unusable answer is an error.
func (s *Service) ProposeTerm(ctx context.Context, term, termContext string, contexts []string) (*domain.TermProposal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	term = strings.TrimSpace(term)
	termContext = strings.TrimSpace(termContext)
	if term == "" {
		return nil, domain.NewValidationError("term", "required")
	}
	if utf8.RuneCountInString(term) > maxProposeTerm {
		return nil, domain.NewValidationError("term", "too long")
	}

	contexts = s.knownContexts(ctx, contexts)

	raw, err := s.llm.Complete(ctx, domain.CompletionRequest{
		Operation:   opProposeTerm,
		System:      extractSystem,
		Prompt:      proposalPrompt(term, termContext, contexts),
		Temperature: s.cfg.ProposalTemperature,
		MaxTokens:   s.cfg.ProposalMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction.ProposeTerm: %w", err)
	}

	var p domain.TermProposal
	err = llmjson.Decode(raw, &p)
	if err == nil && strings.TrimSpace(p.DefinitionDe) == "" {
		err = fmt.Errorf("%w: no definition", llmjson.ErrUnparseable)
	}
	if err != nil {
		return nil, fmt.Errorf("extraction.ProposeTerm: %w", &domain.UpstreamError{Op: "llm " + opProposeTerm, Err: err})
	}

	p.DefinitionDe = strings.TrimSpace(p.DefinitionDe)
	p.DefinitionEn = strings.TrimSpace(p.DefinitionEn)
	p.EinfacheSprache = strings.TrimSpace(p.EinfacheSprache)
	p.Context = strings.TrimSpace(p.Context)
	p.Eselsleitern = cleanList(p.Eselsleitern)
	if p.Context == "" {
		p.Context = termContext
	}
	return &p, nil
}
