// Package question implements the quiz question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

const table = "quiz_questions"

var columns = []string{
	"id::text", "term", "question", "correct_answer", "wrong_answers", "category", "created_at", "generated_by",
}

var insertColumns = []string{
	"term", "question", "correct_answer", "wrong_answers", "category", "generated_by",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides quiz question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one question and returns its id.
func (r *Repo) Create(ctx context.Context, q domain.QuizQuestion) (string, error) {
	query, args, err := psql.Insert(table).
		Columns(insertColumns...).
		Values(insertValues(q)...).
		Suffix("RETURNING id::text").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert question: %w", err)
	}

	var id string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", postgres.MapError(err, "question", q.Term)
	}
	return id, nil
}

// CreateMany inserts all questions in one statement and returns their ids
// in input order.
func (r *Repo) CreateMany(ctx context.Context, qs []domain.QuizQuestion) ([]string, error) {
	if len(qs) == 0 {
		return []string{}, nil
	}

	b := psql.Insert(table).Columns(insertColumns...)
	for _, q := range qs {
		b = b.Values(insertValues(q)...)
	}

	query, args, err := b.Suffix("RETURNING id::text").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulk insert questions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "questions", len(qs))
	}
	defer rows.Close()

	ids := make([]string, 0, len(qs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan question id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "questions", len(qs))
	}
	return ids, nil
}

// ListAll returns every saved question, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.QuizQuestion, error) {
	query, args, err := psql.Select(columns...).From(table).OrderBy("created_at DESC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list questions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "questions", "*")
	}
	defer rows.Close()

	out := []domain.QuizQuestion{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "questions", "*")
	}
	return out, nil
}

// Delete removes one saved question. Returns domain.ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete(table).Where(sq.Expr("id = ?::uuid", id)).ToSql()
	if err != nil {
		return fmt.Errorf("build delete question: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanQuestion(row pgx.Row) (domain.QuizQuestion, error) {
	var (
		q      domain.QuizQuestion
		origin string
	)
	if err := row.Scan(&q.ID, &q.Term, &q.Question, &q.CorrectAnswer, &q.WrongAnswers,
		&q.Category, &q.CreatedAt, &origin); err != nil {
		return domain.QuizQuestion{}, err
	}
	q.GeneratedBy = domain.QuestionOrigin(origin)
	if q.WrongAnswers == nil {
		q.WrongAnswers = []string{}
	}
	return q, nil
}

func insertValues(q domain.QuizQuestion) []any {
	wrong := q.WrongAnswers
	if wrong == nil {
		wrong = []string{}
	}
	category := q.Category
	if category == "" {
		category = domain.DefaultContext
	}
	origin := q.GeneratedBy
	if origin == "" {
		origin = domain.QuestionOriginManual
	}
	return []any{q.Term, q.Question, q.CorrectAnswer, wrong, category, string(origin)}
}
