// Package result implements the quiz result repository using PostgreSQL.
package result

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

const table = "quiz_results"

var columns = []string{
	"id", "user_id", "score", "total_questions", "answers", "category", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// answerJSON is the stored shape of one element of the answers column.
type answerJSON struct {
	QuestionID string `json:"questionId"`
	Correct    bool   `json:"correct"`
	UserAnswer string `json:"userAnswer"`
}

// Repo provides quiz result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a finished quiz and returns the persisted row.
func (r *Repo) Create(ctx context.Context, res domain.QuizResult) (*domain.QuizResult, error) {
	answers, err := encodeAnswers(res.Answers)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Insert(table).
		Columns("user_id", "score", "total_questions", "answers", "category").
		Values(res.UserID, res.Score, res.TotalQuestions, answers, res.Category).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert result: %w", err)
	}

	created, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "quiz_result", res.UserID)
	}
	return &created, nil
}

// GetByID returns a single result.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuizResult, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get result: %w", err)
	}

	res, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "quiz_result", id)
	}
	return &res, nil
}

// ListByUser returns the user's results, newest first, at most limit rows.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]domain.QuizResult, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list results: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "quiz_results", userID)
	}
	defer rows.Close()

	out := []domain.QuizResult{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "quiz_results", userID)
	}
	return out, nil
}

// Delete removes one result. Returns domain.ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete result: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "quiz_result", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quiz_result %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanResult(row pgx.Row) (domain.QuizResult, error) {
	var (
		res     domain.QuizResult
		answers []byte
	)
	if err := row.Scan(&res.ID, &res.UserID, &res.Score, &res.TotalQuestions, &answers, &res.Category, &res.CreatedAt); err != nil {
		return domain.QuizResult{}, err
	}

	decoded, err := decodeAnswers(answers)
	if err != nil {
		return domain.QuizResult{}, err
	}
	res.Answers = decoded
	return res, nil
}

func encodeAnswers(answers []domain.QuizAnswer) (string, error) {
	out := make([]answerJSON, len(answers))
	for i, a := range answers {
		out[i] = answerJSON{QuestionID: a.QuestionID, Correct: a.Correct, UserAnswer: a.UserAnswer}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}
	return string(b), nil
}

func decodeAnswers(raw []byte) ([]domain.QuizAnswer, error) {
	if len(raw) == 0 {
		return []domain.QuizAnswer{}, nil
	}
	var stored []answerJSON
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	out := make([]domain.QuizAnswer, len(stored))
	for i, a := range stored {
		out[i] = domain.QuizAnswer{QuestionID: a.QuestionID, Correct: a.Correct, UserAnswer: a.UserAnswer}
	}
	return out, nil
}
