// Package term implements the glossary term repository using PostgreSQL.
package term

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

const table = "glossary_terms"

var columns = []string{
	"id", "term", "context", "definition_de", "definition_en", "einfache_sprache",
	"eselsleitern", "source", "source_url", "status", "created_by", "created_by_name",
	"created_at", "updated_at", "reviewed_by",
}

var insertColumns = []string{
	"term", "context", "definition_de", "definition_en", "einfache_sprache",
	"eselsleitern", "source", "source_url", "status", "created_by", "created_by_name",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides glossary term persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new term repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a term and returns its store-assigned id. Timestamps are
// set by the database.
func (r *Repo) Create(ctx context.Context, t domain.GlossaryTerm) (uuid.UUID, error) {
	query, args, err := psql.Insert(table).
		Columns(insertColumns...).
		Values(insertValues(t)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert term: %w", err)
	}

	var id uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "term", t.Term)
	}
	return id, nil
}

// CreateMany inserts all terms with a single multi-row INSERT.
func (r *Repo) CreateMany(ctx context.Context, terms []domain.GlossaryTerm) (int64, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	b := psql.Insert(table).Columns(insertColumns...)
	for _, t := range terms {
		b = b.Values(insertValues(t)...)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk insert terms: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "terms", len(terms))
	}
	return tag.RowsAffected(), nil
}

// Update applies the non-nil fields of patch and refreshes updated_at.
// Returns domain.ErrNotFound when no row has the id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.TermPatch) error {
	b := applyPatch(psql.Update(table), patch).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update term: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateByTerm applies patch to every row whose headword equals term exactly
// and returns the number of rows changed.
func (r *Repo) UpdateByTerm(ctx context.Context, term string, patch domain.TermPatch) (int64, error) {
	query, args, err := applyPatch(psql.Update(table), patch).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"term": term}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update by term: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "term", term)
	}
	return tag.RowsAffected(), nil
}

// Delete hard-deletes one term. Returns domain.ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete term: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteMany removes all terms with the given ids and returns how many were deleted.
func (r *Repo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := psql.Delete(table).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete terms: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "terms", len(ids))
	}
	return tag.RowsAffected(), nil
}

// GetByID returns a single term.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GlossaryTerm, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get term: %w", err)
	}

	t, err := scanTerm(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "term", id)
	}
	return &t, nil
}

// FindByTerm returns up to limit terms whose headword equals term exactly
// (case-sensitive), in store order. limit 0 means no limit.
func (r *Repo) FindByTerm(ctx context.Context, term string, limit uint64) ([]domain.GlossaryTerm, error) {
	b := psql.Select(columns...).From(table).Where(sq.Eq{"term": term})
	if limit > 0 {
		b = b.Limit(limit)
	}
	return r.list(ctx, b)
}

// ListAll returns every term ordered by headword ascending.
func (r *Repo) ListAll(ctx context.Context) ([]domain.GlossaryTerm, error) {
	return r.list(ctx, psql.Select(columns...).From(table).OrderBy("term ASC", "id ASC"))
}

// ListApproved returns up to limit approved terms in random order.
func (r *Repo) ListApproved(ctx context.Context, limit uint64) ([]domain.GlossaryTerm, error) {
	b := psql.Select(columns...).From(table).
		Where(sq.Eq{"status": string(domain.TermStatusApproved)}).
		OrderBy("random()").
		Limit(limit)
	return r.list(ctx, b)
}

// Contexts returns the distinct non-empty contexts in alphabetical order.
func (r *Repo) Contexts(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("DISTINCT context").From(table).
		Where(sq.NotEq{"context": ""}).
		OrderBy("context ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contexts: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "contexts", "*")
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan context: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "contexts", "*")
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.GlossaryTerm, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list terms: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "terms", "*")
	}
	defer rows.Close()

	out := []domain.GlossaryTerm{}
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "terms", "*")
	}
	return out, nil
}

func scanTerm(row pgx.Row) (domain.GlossaryTerm, error) {
	var (
		t      domain.GlossaryTerm
		status string
	)
	err := row.Scan(
		&t.ID, &t.Term, &t.Context, &t.DefinitionDe, &t.DefinitionEn, &t.EinfacheSprache,
		&t.Eselsleitern, &t.Source, &t.SourceURL, &status, &t.CreatedBy, &t.CreatedByName,
		&t.CreatedAt, &t.UpdatedAt, &t.ReviewedBy,
	)
	if err != nil {
		return domain.GlossaryTerm{}, err
	}
	t.Status = domain.TermStatus(status)
	if t.Eselsleitern == nil {
		t.Eselsleitern = []string{}
	}
	return t, nil
}

func insertValues(t domain.GlossaryTerm) []any {
	eselsleitern := t.Eselsleitern
	if eselsleitern == nil {
		eselsleitern = []string{}
	}
	status := t.Status
	if status == "" {
		status = domain.TermStatusPending
	}
	return []any{
		t.Term, t.Context, t.DefinitionDe, t.DefinitionEn, t.EinfacheSprache,
		eselsleitern, t.Source, t.SourceURL, string(status), t.CreatedBy, t.CreatedByName,
	}
}

func applyPatch(b sq.UpdateBuilder, p domain.TermPatch) sq.UpdateBuilder {
	if p.Term != nil {
		b = b.Set("term", *p.Term)
	}
	if p.Context != nil {
		b = b.Set("context", *p.Context)
	}
	if p.DefinitionDe != nil {
		b = b.Set("definition_de", *p.DefinitionDe)
	}
	if p.DefinitionEn != nil {
		b = b.Set("definition_en", *p.DefinitionEn)
	}
	if p.EinfacheSprache != nil {
		b = b.Set("einfache_sprache", *p.EinfacheSprache)
	}
	if p.Eselsleitern != nil {
		v := *p.Eselsleitern
		if v == nil {
			v = []string{}
		}
		b = b.Set("eselsleitern", v)
	}
	if p.Source != nil {
		b = b.Set("source", *p.Source)
	}
	if p.SourceURL != nil {
		b = b.Set("source_url", *p.SourceURL)
	}
	if p.Status != nil {
		b = b.Set("status", string(*p.Status))
	}
	if p.ReviewedBy != nil {
		b = b.Set("reviewed_by", *p.ReviewedBy)
	}
	return b
}
