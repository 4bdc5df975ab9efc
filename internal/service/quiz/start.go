package quiz

import (
	"context"
	"fmt"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
)

// PlayQuestion is a question ready to be shown, with options in random order.
type PlayQuestion struct {
	domain.QuizQuestion
	Options []string
}

// Start assembles a quiz of count questions from the current snapshots.
// count 0 selects the configured default. Fewer questions are returned when
// not enough material exists.
func (s *Service) Start(ctx context.Context, count int) ([]PlayQuestion, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if count == 0 {
		count = s.cfg.DefaultCount
	}
	if count < 1 || count > s.cfg.MaxCount {
		return nil, domain.NewValidationError("count", fmt.Sprintf("must be between 1 and %d", s.cfg.MaxCount))
	}

	rng := s.newRand()
	set := BuildQuizSet(s.snapshot.Questions(), s.snapshot.Terms(), count, rng)

	out := make([]PlayQuestion, len(set))
	for i, q := range set {
		out[i] = PlayQuestion{QuizQuestion: q, Options: ShuffleOptions(q, rng)}
	}
	return out, nil
}
