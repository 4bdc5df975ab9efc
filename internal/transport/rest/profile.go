package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	Avatars() []domain.Avatar
}

// ProfileHandler serves the caller's profile and the avatar catalogue.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
	AvatarID    *string `json:"avatarId" validate:"omitempty,max=50"`
}

type avatarResponse struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// Get handles GET /me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		DisplayName: req.DisplayName,
		AvatarID:    req.AvatarID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Avatars handles GET /avatars.
func (h *ProfileHandler) Avatars(w http.ResponseWriter, _ *http.Request) {
	avatars := h.svc.Avatars()
	out := make([]avatarResponse, len(avatars))
	for i, a := range avatars {
		out[i] = avatarResponse{ID: a.ID, Emoji: a.Emoji, Label: a.Label}
	}
	writeJSON(w, http.StatusOK, out)
}
