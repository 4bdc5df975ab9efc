package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@insel.ch",
		DisplayName:  "Test User " + suffix,
		AvatarID:     domain.DefaultAvatarID,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealhashnot",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, avatar_id, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, user.AvatarID, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTerm inserts a glossary term whose headword carries a unique suffix so
// parallel tests never see each other's rows by name.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, term, termContext string, status domain.TermStatus) domain.GlossaryTerm {
	t.Helper()

	g := domain.GlossaryTerm{
		Term:         term + "-" + uniqueSuffix(),
		Context:      termContext,
		DefinitionDe: "Definition von " + term,
		DefinitionEn: "Definition of " + term,
		Eselsleitern: []string{},
		Status:       status,
		CreatedBy:    "testhelper",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO glossary_terms (term, context, definition_de, definition_en, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		g.Term, g.Context, g.DefinitionDe, g.DefinitionEn, string(g.Status), g.CreatedBy,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm: %v", err)
	}

	return g
}
