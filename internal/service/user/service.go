package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName, avatarID *string) (*domain.User, error)
}

// Service implements profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// Avatars returns the fixed avatar catalogue.
func (s *Service) Avatars() []domain.Avatar {
	out := make([]domain.Avatar, len(domain.Avatars))
	copy(out, domain.Avatars)
	return out
}
