package glossary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
)

// Add stores a user submission as a pending term and returns its id.
// Duplicates are allowed; use CheckDuplicate to warn beforehand.
func (s *Service) Add(ctx context.Context, input TermInput) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	name, err := s.authorName(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("glossary.Add: %w", err)
	}

	id, err := s.terms.Create(ctx, newTerm(input, userID.String(), name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("glossary.Add: %w", err)
	}

	s.log.InfoContext(ctx, "term added",
		slog.String("term_id", id.String()),
		slog.String("user_id", userID.String()),
	)

	return id, nil
}

// AddMany stores accepted extraction candidates as pending terms in one
// statement. Either all inputs are valid and stored or none is.
func (s *Service) AddMany(ctx context.Context, inputs []TermInput) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if len(inputs) == 0 {
		return 0, domain.NewValidationError("terms", "required")
	}

	normalized := make([]TermInput, len(inputs))
	var fieldErrs []domain.FieldError
	for i, in := range inputs {
		normalized[i] = in.normalize()
		var ve *domain.ValidationError
		if errors.As(normalized[i].Validate(), &ve) {
			for _, fe := range ve.Errors {
				fieldErrs = append(fieldErrs, domain.FieldError{
					Field:   fmt.Sprintf("terms[%d].%s", i, fe.Field),
					Message: fe.Message,
				})
			}
		}
	}
	if len(fieldErrs) > 0 {
		return 0, domain.NewValidationErrors(fieldErrs)
	}

	name, err := s.authorName(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("glossary.AddMany: %w", err)
	}

	terms := make([]domain.GlossaryTerm, len(normalized))
	for i, in := range normalized {
		terms[i] = newTerm(in, userID.String(), name)
	}

	n, err := s.terms.CreateMany(ctx, terms)
	if err != nil {
		return 0, fmt.Errorf("glossary.AddMany: %w", err)
	}

	s.log.InfoContext(ctx, "terms imported",
		slog.Int64("count", n),
		slog.String("user_id", userID.String()),
	)

	return n, nil
}

// authorName resolves the display name stored next to a contribution,
// falling back to the email address.
func (s *Service) authorName(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get author: %w", err)
	}
	if u.DisplayName != "" {
		return u.DisplayName, nil
	}
	return u.Email, nil
}

func newTerm(in TermInput, createdBy, createdByName string) domain.GlossaryTerm {
	return domain.GlossaryTerm{
		Term:            in.Term,
		Context:         in.Context,
		DefinitionDe:    in.DefinitionDe,
		DefinitionEn:    in.DefinitionEn,
		EinfacheSprache: in.EinfacheSprache,
		Eselsleitern:    in.Eselsleitern,
		Source:          in.Source,
		SourceURL:       in.SourceURL,
		Status:          domain.TermStatusPending,
		CreatedBy:       createdBy,
		CreatedByName:   createdByName,
	}
}
