package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/llmjson"
)

const generateOperation = "quiz_generate"

const generateSystem = "Du bist ein Experte für medizinische Didaktik und erstellst Quizfragen für Mitarbeitende des Inselspitals Bern."

// generatedItem is one question as returned by the model.
type generatedItem struct {
	Term          string   `json:"term"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	WrongAnswers  []string `json:"wrongAnswers"`
	Category      string   `json:"category"`
}

// Generate asks the language model for new questions about termCount
// randomly chosen approved terms and stores them. termCount 0 selects the
// configured default. A response that cannot be parsed yields an empty,
// non-error result.
func (s *Service) Generate(ctx context.Context, termCount int) ([]domain.QuizQuestion, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if termCount == 0 {
		termCount = s.cfg.DefaultTermCount
	}
	if termCount < 1 || termCount > s.cfg.MaxCount {
		return nil, domain.NewValidationError("term_count", fmt.Sprintf("must be between 1 and %d", s.cfg.MaxCount))
	}

	terms, err := s.terms.ListApproved(ctx, uint64(termCount*2))
	if err != nil {
		return nil, fmt.Errorf("quiz.Generate: %w", err)
	}
	// The minimum applies to the fetched pool, not to termCount.
	if len(terms) < s.cfg.MinTermsForLLM {
		return nil, fmt.Errorf("quiz.Generate: %d approved terms, need %d: %w",
			len(terms), s.cfg.MinTermsForLLM, domain.ErrFailedPrecondition)
	}
	if len(terms) > termCount {
		terms = terms[:termCount]
	}

	raw, err := s.llm.Complete(ctx, domain.CompletionRequest{
		Operation:   generateOperation,
		System:      generateSystem,
		Prompt:      buildGeneratePrompt(terms),
		Temperature: s.cfg.GenerateTemperature,
		MaxTokens:   s.cfg.GenerateMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.Generate: %w", err)
	}

	var items []generatedItem
	if err := llmjson.Decode(raw, &items); err != nil {
		if errors.Is(err, llmjson.ErrUnparseable) {
			s.log.WarnContext(ctx, "unparseable quiz response", slog.Int("length", len(raw)))
			return []domain.QuizQuestion{}, nil
		}
		return nil, fmt.Errorf("quiz.Generate: %w", err)
	}

	questions := toQuestions(items)
	if len(questions) == 0 {
		return questions, nil
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ids, err := s.questions.CreateMany(ctx, questions)
		if err != nil {
			return err
		}
		for i := range questions {
			if i < len(ids) {
				questions[i].ID = ids[i]
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.Generate: %w", err)
	}

	s.metrics.AddGeneratedQuestions(len(questions))
	s.log.InfoContext(ctx, "quiz questions generated",
		slog.Int("terms", len(terms)),
		slog.Int("questions", len(questions)),
	)
	return questions, nil
}

func buildGeneratePrompt(terms []domain.GlossaryTerm) string {
	var b strings.Builder
	b.WriteString("Erstelle für jeden der folgenden Fachbegriffe eine Multiple-Choice-Frage.\n")
	b.WriteString("Nutze abwechselnd drei Fragetypen: Definition erkennen, Begriff zur Definition finden, Anwendung im Klinikalltag.\n\n")
	b.WriteString("Begriffe:\n")
	for _, t := range terms {
		b.WriteString(t.Term)
		b.WriteString(": ")
		b.WriteString(t.DefinitionDe)
		b.WriteString("\n")
	}
	b.WriteString("\nAntworte ausschliesslich mit einem JSON-Array. Jedes Element hat die Felder ")
	b.WriteString(`"term", "question", "correctAnswer", "wrongAnswers" (genau 3 plausible falsche Antworten) und "category".`)
	b.WriteString("\nAlle Antworten sind kürzer als 150 Zeichen.")
	return b.String()
}

func toQuestions(items []generatedItem) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, 0, len(items))
	created := time.Now().UTC()
	for _, it := range items {
		question := strings.TrimSpace(it.Question)
		correct := Truncate(strings.TrimSpace(it.CorrectAnswer))
		if question == "" || correct == "" {
			continue
		}

		wrong := make([]string, 0, maxWrongAnswers)
		for _, w := range it.WrongAnswers {
			w = Truncate(strings.TrimSpace(w))
			if w == "" || w == correct {
				continue
			}
			wrong = append(wrong, w)
			if len(wrong) == maxWrongAnswers {
				break
			}
		}

		category := strings.TrimSpace(it.Category)
		if category == "" {
			category = domain.DefaultContext
		}

		out = append(out, domain.QuizQuestion{
			Term:          strings.TrimSpace(it.Term),
			Question:      question,
			CorrectAnswer: correct,
			WrongAnswers:  wrong,
			Category:      category,
			CreatedAt:     created,
			GeneratedBy:   domain.QuestionOriginLLM,
		})
	}
	return out
}
