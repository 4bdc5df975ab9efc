package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
)

const defaultResultLimit = 50

// SaveResult scores the answers and stores the result for the caller.
func (s *Service) SaveResult(ctx context.Context, input ResultInput) (*domain.QuizResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	answers := make([]domain.QuizAnswer, len(input.Answers))
	for i, a := range input.Answers {
		answers[i] = domain.QuizAnswer{
			QuestionID: a.QuestionID,
			Correct:    IsCorrect(a.CorrectAnswer, a.UserAnswer),
			UserAnswer: a.UserAnswer,
		}
	}

	total := input.TotalQuestions
	if total == 0 {
		total = len(answers)
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultContext
	}

	res, err := s.results.Create(ctx, domain.QuizResult{
		UserID:         userID,
		Score:          Score(answers),
		TotalQuestions: total,
		Answers:        answers,
		Category:       category,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.SaveResult: %w", err)
	}

	s.log.InfoContext(ctx, "quiz result saved",
		slog.String("user_id", userID.String()),
		slog.Int("score", res.Score),
		slog.Int("total", res.TotalQuestions),
	)
	return res, nil
}

// ListResults returns the caller's results, newest first.
func (s *Service) ListResults(ctx context.Context, limit int) ([]domain.QuizResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > defaultResultLimit {
		limit = defaultResultLimit
	}

	out, err := s.results.ListByUser(ctx, userID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("quiz.ListResults: %w", err)
	}
	return out, nil
}

// DeleteResult removes one of the caller's results. Results of other users
// yield ErrForbidden.
func (s *Service) DeleteResult(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	res, err := s.results.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("quiz.DeleteResult: %w", err)
	}
	if res.UserID != userID {
		return fmt.Errorf("quiz.DeleteResult: %w", domain.ErrForbidden)
	}

	if err := s.results.Delete(ctx, id); err != nil {
		return fmt.Errorf("quiz.DeleteResult: %w", err)
	}
	return nil
}
