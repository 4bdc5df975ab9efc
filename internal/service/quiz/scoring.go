package quiz

import (
	"math"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// Rating is the verdict shown after a quiz.
type Rating string

const (
	RatingExcellent     Rating = "excellent"
	RatingGood          Rating = "good"
	RatingNeedsPractice Rating = "needs_practice"
)

// IsCorrect compares by string identity; no normalisation is applied.
func IsCorrect(correctAnswer, userAnswer string) bool {
	return userAnswer == correctAnswer
}

// Score counts the correct answers.
func Score(answers []domain.QuizAnswer) int {
	n := 0
	for _, a := range answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// Percentage returns score/total*100 rounded to the nearest integer.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Classify maps a percentage to a rating: 80 and above is excellent,
// 50 and above is good.
func Classify(pct int) Rating {
	switch {
	case pct >= 80:
		return RatingExcellent
	case pct >= 50:
		return RatingGood
	default:
		return RatingNeedsPractice
	}
}
