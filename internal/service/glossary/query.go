package glossary

import (
	"context"
	"fmt"
	"strings"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/live"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
)

// CheckDuplicate returns one term whose headword equals the trimmed input
// exactly, or nil. The match is only a hint; adding a duplicate is allowed.
func (s *Service) CheckDuplicate(ctx context.Context, term string) (*domain.GlossaryTerm, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	found, err := s.terms.FindByTerm(ctx, term, 1)
	if err != nil {
		return nil, fmt.Errorf("glossary.CheckDuplicate: %w", err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// Contexts returns the distinct contexts currently in use.
func (s *Service) Contexts(ctx context.Context) ([]string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	out, err := s.terms.Contexts(ctx)
	if err != nil {
		return nil, fmt.Errorf("glossary.Contexts: %w", err)
	}
	return out, nil
}

// Subscribe delivers the full term list ordered by headword, once right away
// and again after every change, until ctx ends or unsubscribe is called.
func (s *Service) Subscribe(ctx context.Context, fn func([]domain.GlossaryTerm)) (unsubscribe func(), err error) {
	stop, err := live.Watch(ctx, s.notifier, s.channel, s.terms.ListAll, fn, s.log)
	if err != nil {
		return nil, fmt.Errorf("glossary.Subscribe: %w", err)
	}
	return stop, nil
}
