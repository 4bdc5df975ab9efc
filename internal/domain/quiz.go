package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestionOrigin records who authored a quiz question.
type QuestionOrigin string

const (
	QuestionOriginLLM    QuestionOrigin = "llm"
	QuestionOriginManual QuestionOrigin = "manual"
)

func (o QuestionOrigin) String() string { return string(o) }

func (o QuestionOrigin) IsValid() bool {
	switch o {
	case QuestionOriginLLM, QuestionOriginManual:
		return true
	}
	return false
}

// GeneratedQuestionPrefix marks the ids of questions synthesized from terms.
// Such questions only live for one quiz and are never persisted implicitly.
const GeneratedQuestionPrefix = "gen_"

// QuizQuestion is a multiple-choice question. Term references a glossary
// headword by name, not by id.
type QuizQuestion struct {
	ID            string
	Term          string
	Question      string
	CorrectAnswer string
	WrongAnswers  []string
	Category      string
	CreatedAt     time.Time
	GeneratedBy   QuestionOrigin
}

// QuizAnswer is one recorded response inside a QuizResult.
type QuizAnswer struct {
	QuestionID string
	Correct    bool
	UserAnswer string
}

// QuizResult is a finished quiz owned by exactly one user.
type QuizResult struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Score          int
	TotalQuestions int
	Answers        []QuizAnswer
	Category       string
	CreatedAt      time.Time
}
