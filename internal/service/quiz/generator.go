package quiz

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// MaxAnswerRunes bounds the length of generated answer options.
const MaxAnswerRunes = 150

const maxWrongAnswers = 3

// Shuffler is satisfied by *rand.Rand from math/rand/v2.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Truncate returns the first MaxAnswerRunes runes of s.
func Truncate(s string) string {
	n := 0
	for i := range s {
		if n == MaxAnswerRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// GenerateFromTerms synthesizes up to count "what does X mean" questions.
//
// The terms are shuffled and the first min(count, len(terms)) positions are
// visited; terms without a German definition are skipped, so fewer than
// count questions may come back. Wrong answers are the definitions of up to
// three other shuffled terms and never equal the correct answer.
func GenerateFromTerms(terms []domain.GlossaryTerm, count int, rng Shuffler) []domain.QuizQuestion {
	out := []domain.QuizQuestion{}
	if count <= 0 || len(terms) == 0 {
		return out
	}

	shuffled := slices.Clone(terms)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	n := min(count, len(shuffled))
	for i := 0; i < n; i++ {
		t := shuffled[i]
		if strings.TrimSpace(t.DefinitionDe) == "" {
			continue
		}
		correct := Truncate(t.DefinitionDe)

		wrong := make([]string, 0, maxWrongAnswers)
		for j, other := range shuffled {
			if len(wrong) == maxWrongAnswers {
				break
			}
			if j == i || strings.TrimSpace(other.DefinitionDe) == "" {
				continue
			}
			if w := Truncate(other.DefinitionDe); w != correct {
				wrong = append(wrong, w)
			}
		}

		out = append(out, domain.QuizQuestion{
			ID:            domain.GeneratedQuestionPrefix + strconv.Itoa(i),
			Term:          t.Term,
			Question:      `Was bedeutet "` + t.Term + `"?`,
			CorrectAnswer: correct,
			WrongAnswers:  wrong,
			Category:      t.CategoryOrDefault(),
			GeneratedBy:   domain.QuestionOriginManual,
		})
	}

	return out
}

// BuildQuizSet prefers saved questions, tops them up with generated ones,
// shuffles the pool and cuts it to count. A smaller pool is returned whole.
func BuildQuizSet(saved []domain.QuizQuestion, terms []domain.GlossaryTerm, count int, rng Shuffler) []domain.QuizQuestion {
	if count <= 0 {
		return []domain.QuizQuestion{}
	}

	pool := slices.Clone(saved)
	if len(pool) < count {
		pool = append(pool, GenerateFromTerms(terms, count-len(pool), rng)...)
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > count {
		pool = pool[:count]
	}
	if pool == nil {
		pool = []domain.QuizQuestion{}
	}
	return pool
}

// ShuffleOptions returns the correct and wrong answers in random order.
func ShuffleOptions(q domain.QuizQuestion, rng Shuffler) []string {
	opts := make([]string, 0, 1+len(q.WrongAnswers))
	opts = append(opts, q.CorrectAnswer)
	opts = append(opts, q.WrongAnswers...)
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
