package quiz

import (
	"strings"
	"unicode/utf8"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

const (
	maxQuestionLen = 1000
	maxAnswerLen   = 1000
	maxWrong       = 10
)

// QuestionInput holds a manually authored question.
type QuestionInput struct {
	Term          string
	Question      string
	CorrectAnswer string
	WrongAnswers  []string
	Category      string
}

// Validate requires question text and a correct answer.
func (i QuestionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	} else if utf8.RuneCountInString(i.Question) > maxQuestionLen {
		errs = append(errs, domain.FieldError{Field: "question", Message: "too long"})
	}

	if strings.TrimSpace(i.CorrectAnswer) == "" {
		errs = append(errs, domain.FieldError{Field: "correct_answer", Message: "required"})
	} else if utf8.RuneCountInString(i.CorrectAnswer) > maxAnswerLen {
		errs = append(errs, domain.FieldError{Field: "correct_answer", Message: "too long"})
	}

	if len(i.WrongAnswers) > maxWrong {
		errs = append(errs, domain.FieldError{Field: "wrong_answers", Message: "too many"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnswerInput is one response of a finished quiz. CorrectAnswer is the
// answer text the quiz was started with.
type AnswerInput struct {
	QuestionID    string
	UserAnswer    string
	CorrectAnswer string
}

// ResultInput holds a finished quiz to be stored.
type ResultInput struct {
	Category       string
	TotalQuestions int
	Answers        []AnswerInput
}

// Validate checks the result shape.
func (i ResultInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Answers) == 0 {
		errs = append(errs, domain.FieldError{Field: "answers", Message: "required"})
	}
	if i.TotalQuestions < 0 || (i.TotalQuestions > 0 && i.TotalQuestions < len(i.Answers)) {
		errs = append(errs, domain.FieldError{Field: "total_questions", Message: "must cover all answers"})
	}
	for idx, a := range i.Answers {
		if a.QuestionID == "" {
			errs = append(errs, domain.FieldError{Field: "answers[" + itoa(idx) + "].question_id", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
