// Package glossary implements the shared term list: CRUD, duplicate hints,
// review and live snapshots.
package glossary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termRepo interface {
	Create(ctx context.Context, t domain.GlossaryTerm) (uuid.UUID, error)
	CreateMany(ctx context.Context, terms []domain.GlossaryTerm) (int64, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TermPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByTerm(ctx context.Context, term string, limit uint64) ([]domain.GlossaryTerm, error)
	ListAll(ctx context.Context) ([]domain.GlossaryTerm, error)
	Contexts(ctx context.Context) ([]string, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type changeNotifier interface {
	Subscribe(channel string, fn func()) (unsubscribe func())
}

// Service implements glossary operations.
type Service struct {
	log      *slog.Logger
	terms    termRepo
	users    userRepo
	notifier changeNotifier
	channel  string
}

// NewService creates a glossary service. channel is the notification channel
// raised whenever glossary rows change.
func NewService(logger *slog.Logger, terms termRepo, users userRepo, notifier changeNotifier, channel string) *Service {
	return &Service{
		log:      logger.With("service", "glossary"),
		terms:    terms,
		users:    users,
		notifier: notifier,
		channel:  channel,
	}
}
