package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/live"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
)

// AddQuestion stores a manually authored question and returns its id.
func (s *Service) AddQuestion(ctx context.Context, input QuestionInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	q := domain.QuizQuestion{
		Term:          strings.TrimSpace(input.Term),
		Question:      strings.TrimSpace(input.Question),
		CorrectAnswer: strings.TrimSpace(input.CorrectAnswer),
		WrongAnswers:  input.WrongAnswers,
		Category:      strings.TrimSpace(input.Category),
		GeneratedBy:   domain.QuestionOriginManual,
	}
	if q.Category == "" {
		q.Category = domain.DefaultContext
	}
	if q.WrongAnswers == nil {
		q.WrongAnswers = []string{}
	}

	id, err := s.questions.Create(ctx, q)
	if err != nil {
		return "", fmt.Errorf("quiz.AddQuestion: %w", err)
	}

	s.log.InfoContext(ctx, "question added",
		slog.String("question_id", id),
		slog.String("user_id", userID.String()),
	)
	return id, nil
}

// DeleteQuestion removes a saved question.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if strings.HasPrefix(id, domain.GeneratedQuestionPrefix) {
		return domain.NewValidationError("id", "generated questions are not stored")
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("quiz.DeleteQuestion: %w", err)
	}
	return nil
}

// SubscribeQuestions delivers all saved questions, newest first, right away
// and after every change.
func (s *Service) SubscribeQuestions(ctx context.Context, fn func([]domain.QuizQuestion)) (unsubscribe func(), err error) {
	stop, err := live.Watch(ctx, s.notifier, s.channel, s.questions.ListAll, fn, s.log)
	if err != nil {
		return nil, fmt.Errorf("quiz.SubscribeQuestions: %w", err)
	}
	return stop, nil
}

func itoa(i int) string { return strconv.Itoa(i) }
