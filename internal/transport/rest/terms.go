package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/glossary"
)

type glossaryService interface {
	Add(ctx context.Context, input glossary.TermInput) (uuid.UUID, error)
	AddMany(ctx context.Context, inputs []glossary.TermInput) (int64, error)
	Update(ctx context.Context, id uuid.UUID, input glossary.UpdateInput) error
	Approve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CheckDuplicate(ctx context.Context, term string) (*domain.GlossaryTerm, error)
	Contexts(ctx context.Context) ([]string, error)
	Subscribe(ctx context.Context, fn func([]domain.GlossaryTerm)) (func(), error)
}

type termView interface {
	Ready() bool
	Visible(f domain.TermFilter) []domain.GlossaryTerm
}

// TermHandler serves the glossary endpoints.
type TermHandler struct {
	svc  glossaryService
	view termView
	log  *slog.Logger
}

// NewTermHandler creates a TermHandler. List reads from view, which the
// application keeps in sync with the store.
func NewTermHandler(svc glossaryService, view termView, logger *slog.Logger) *TermHandler {
	return &TermHandler{svc: svc, view: view, log: logger.With("handler", "terms")}
}

type termRequest struct {
	Term            string   `json:"term" validate:"required,max=200"`
	Context         string   `json:"context" validate:"max=100"`
	DefinitionDe    string   `json:"definitionDe" validate:"required"`
	DefinitionEn    string   `json:"definitionEn"`
	EinfacheSprache string   `json:"einfacheSprache"`
	Eselsleitern    []string `json:"eselsleitern" validate:"max=20"`
	Source          string   `json:"source"`
	SourceURL       string   `json:"sourceUrl" validate:"omitempty,http_url"`
}

type termBatchRequest struct {
	Terms []termRequest `json:"terms" validate:"required,min=1,max=500,dive"`
}

type batchResponse struct {
	Added int64 `json:"added"`
}

type termPatchRequest struct {
	Term            *string   `json:"term" validate:"omitempty,max=200"`
	Context         *string   `json:"context" validate:"omitempty,max=100"`
	DefinitionDe    *string   `json:"definitionDe"`
	DefinitionEn    *string   `json:"definitionEn"`
	EinfacheSprache *string   `json:"einfacheSprache"`
	Eselsleitern    *[]string `json:"eselsleitern"`
	Source          *string   `json:"source"`
	SourceURL       *string   `json:"sourceUrl"`
}

type termResponse struct {
	ID              string    `json:"id"`
	Term            string    `json:"term"`
	Context         string    `json:"context"`
	DefinitionDe    string    `json:"definitionDe"`
	DefinitionEn    string    `json:"definitionEn"`
	EinfacheSprache string    `json:"einfacheSprache"`
	Eselsleitern    []string  `json:"eselsleitern"`
	Source          string    `json:"source"`
	SourceURL       string    `json:"sourceUrl"`
	Status          string    `json:"status"`
	CreatedBy       string    `json:"createdBy"`
	CreatedByName   string    `json:"createdByName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	ReviewedBy      *string   `json:"reviewedBy,omitempty"`
}

func (req termRequest) input() glossary.TermInput {
	return glossary.TermInput{
		Term:            req.Term,
		Context:         req.Context,
		DefinitionDe:    req.DefinitionDe,
		DefinitionEn:    req.DefinitionEn,
		EinfacheSprache: req.EinfacheSprache,
		Eselsleitern:    req.Eselsleitern,
		Source:          req.Source,
		SourceURL:       req.SourceURL,
	}
}

type idResponse struct {
	ID string `json:"id"`
}

type duplicateResponse struct {
	Duplicate bool          `json:"duplicate"`
	Term      *termResponse `json:"term,omitempty"`
}

// List handles GET /terms. It answers 503 until the first snapshot is loaded.
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.view.Ready() {
		writeError(w, http.StatusServiceUnavailable, "glossary is loading")
		return
	}

	q := r.URL.Query()
	terms := h.view.Visible(domain.TermFilter{
		Search:  strings.TrimSpace(q.Get("search")),
		Letter:  strings.ToUpper(strings.TrimSpace(q.Get("letter"))),
		Context: strings.TrimSpace(q.Get("context")),
	})
	writeJSON(w, http.StatusOK, toTermResponses(terms))
}

// Stream handles GET /terms/stream. Every change to the store pushes the full
// ordered term list as a "terms" event.
func (h *TermHandler) Stream(w http.ResponseWriter, r *http.Request) {
	streamSnapshots(h.log, w, r, "terms", h.svc.Subscribe, toTermResponses)
}

// Create handles POST /terms.
func (h *TermHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.svc.Add(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id.String()})
}

// CreateBatch handles POST /terms/batch. It stores accepted extraction
// candidates as pending terms; one invalid entry rejects the whole batch.
func (h *TermHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req termBatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inputs := make([]glossary.TermInput, len(req.Terms))
	for i, t := range req.Terms {
		inputs[i] = t.input()
	}

	n, err := h.svc.AddMany(r.Context(), inputs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, batchResponse{Added: n})
}

// Update handles PATCH /terms/{id}.
func (h *TermHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req termPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.Update(r.Context(), id, glossary.UpdateInput{
		Term:            req.Term,
		Context:         req.Context,
		DefinitionDe:    req.DefinitionDe,
		DefinitionEn:    req.DefinitionEn,
		EinfacheSprache: req.EinfacheSprache,
		Eselsleitern:    req.Eselsleitern,
		Source:          req.Source,
		SourceURL:       req.SourceURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Approve handles POST /terms/{id}/approve.
func (h *TermHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Approve(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /terms/{id}.
func (h *TermHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Duplicate handles GET /terms/duplicate?term=.
func (h *TermHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if strings.TrimSpace(term) == "" {
		writeValidation(w, domain.NewValidationError("term", "required"))
		return
	}

	found, err := h.svc.CheckDuplicate(r.Context(), term)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if found == nil {
		writeJSON(w, http.StatusOK, duplicateResponse{})
		return
	}
	resp := toTermResponse(*found)
	writeJSON(w, http.StatusOK, duplicateResponse{Duplicate: true, Term: &resp})
}

// Contexts handles GET /contexts.
func (h *TermHandler) Contexts(w http.ResponseWriter, r *http.Request) {
	contexts, err := h.svc.Contexts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contexts)
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeValidation(w, domain.NewValidationError(name, "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toTermResponse(t domain.GlossaryTerm) termResponse {
	eselsleitern := t.Eselsleitern
	if eselsleitern == nil {
		eselsleitern = []string{}
	}
	return termResponse{
		ID:              t.ID.String(),
		Term:            t.Term,
		Context:         t.Context,
		DefinitionDe:    t.DefinitionDe,
		DefinitionEn:    t.DefinitionEn,
		EinfacheSprache: t.EinfacheSprache,
		Eselsleitern:    eselsleitern,
		Source:          t.Source,
		SourceURL:       t.SourceURL,
		Status:          t.Status.String(),
		CreatedBy:       t.CreatedBy,
		CreatedByName:   t.CreatedByName,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		ReviewedBy:      t.ReviewedBy,
	}
}

func toTermResponses(terms []domain.GlossaryTerm) []termResponse {
	out := make([]termResponse, len(terms))
	for i, t := range terms {
		out[i] = toTermResponse(t)
	}
	return out
}
