// Package user implements the user profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "display_name", "avatar_id", "password_hash", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "user", id)
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, "user", email)
}

// Create inserts a new user and returns the persisted row.
// A taken email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := psql.Insert(table).
		Columns("email", "display_name", "avatar_id", "password_hash").
		Values(u.Email, u.DisplayName, u.AvatarID, u.PasswordHash).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return &created, nil
}

// UpdateProfile changes the non-nil profile fields and returns the updated row.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, displayName, avatarID *string) (*domain.User, error) {
	b := psql.Update(table).Set("updated_at", sq.Expr("now()"))
	if displayName != nil {
		b = b.Set("display_name", *displayName)
	}
	if avatarID != nil {
		b = b.Set("avatar_id", *avatarID)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	updated, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &updated, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, entity string, key any) (*domain.User, error) {
	query, args, err := psql.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return &u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.AvatarID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
