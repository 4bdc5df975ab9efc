// Package extraction turns documents and web pages into glossary term
// candidates with the help of the language model.
package extraction

import (
	"context"
	"log/slog"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/llmjson"
)

// ErrUnparseableResponse is matched by errors of ProposeTerm when the model
// answer holds no usable JSON object.
var ErrUnparseableResponse = llmjson.ErrUnparseable

// ProgressFunc receives human-readable status lines. It may be nil.
type ProgressFunc func(status string)

func (f ProgressFunc) report(status string) {
	if f != nil {
		f(status)
	}
}

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

type contextSource interface {
	Contexts(ctx context.Context) ([]string, error)
}

type fetcher interface {
	Fetch(ctx context.Context, url string) (*Resource, error)
}

// Service implements term extraction and proposals.
type Service struct {
	log      *slog.Logger
	llm      completer
	contexts contextSource
	fetch    fetcher
	metrics  *metrics.Metrics
	cfg      config.ExtractionConfig
}

// NewService creates a new extraction service instance.
func NewService(
	logger *slog.Logger,
	llm completer,
	contexts contextSource,
	fetch fetcher,
	m *metrics.Metrics,
	cfg config.ExtractionConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "extraction"),
		llm:      llm,
		contexts: contexts,
		fetch:    fetch,
		metrics:  m,
		cfg:      cfg,
	}
}

// knownContexts returns the caller's labels, or the contexts stored in the
// glossary when none were given. A lookup failure degrades to no labels.
func (s *Service) knownContexts(ctx context.Context, given []string) []string {
	if len(given) > 0 {
		return given
	}
	stored, err := s.contexts.Contexts(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "load contexts for prompt", slog.String("error", err.Error()))
		return nil
	}
	return stored
}
