package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
)

// Update merges the provided fields into a term and refreshes updated_at.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.terms.Update(ctx, id, input.patch()); err != nil {
		return fmt.Errorf("glossary.Update: %w", err)
	}

	s.log.InfoContext(ctx, "term updated",
		slog.String("term_id", id.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// Approve marks a term as reviewed by the caller.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	status := domain.TermStatusApproved
	reviewer := userID.String()
	if err := s.terms.Update(ctx, id, domain.TermPatch{Status: &status, ReviewedBy: &reviewer}); err != nil {
		return fmt.Errorf("glossary.Approve: %w", err)
	}

	s.log.InfoContext(ctx, "term approved",
		slog.String("term_id", id.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// Delete removes a term permanently. Quiz questions that mention the
// headword are left alone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.terms.Delete(ctx, id); err != nil {
		return fmt.Errorf("glossary.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "term deleted",
		slog.String("term_id", id.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
