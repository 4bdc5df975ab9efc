package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/extraction"
)

// JobIDHeader carries the progress job id of an extraction request.
const JobIDHeader = "X-Job-Id"

type extractionService interface {
	ExtractFromPDF(ctx context.Context, pdfURL string, contexts []string, progress extraction.ProgressFunc) ([]domain.TermCandidate, error)
	ExtractFromURL(ctx context.Context, rawURL string, contexts []string, progress extraction.ProgressFunc) ([]domain.TermCandidate, error)
	ProposeTerm(ctx context.Context, term, termContext string, contexts []string) (*domain.TermProposal, error)
}

type progressBroker interface {
	Reporter(id string) extraction.ProgressFunc
	Finish(id string)
	Subscribe(id string) (history []string, updates <-chan string, cancel func())
}

// ExtractHandler serves the LLM import endpoints and their progress stream.
type ExtractHandler struct {
	svc      extractionService
	progress progressBroker
	log      *slog.Logger
}

func NewExtractHandler(svc extractionService, progress progressBroker, logger *slog.Logger) *ExtractHandler {
	return &ExtractHandler{svc: svc, progress: progress, log: logger.With("handler", "extract")}
}

type extractPDFRequest struct {
	PDFURL   string   `json:"pdfUrl" validate:"required,http_url"`
	Contexts []string `json:"contexts" validate:"max=200"`
	JobID    string   `json:"jobId" validate:"omitempty,uuid"`
}

type extractURLRequest struct {
	URL      string   `json:"url" validate:"required,http_url"`
	Contexts []string `json:"contexts" validate:"max=200"`
	JobID    string   `json:"jobId" validate:"omitempty,uuid"`
}

type proposeRequest struct {
	Term             string   `json:"term" validate:"required,max=200"`
	Context          string   `json:"context" validate:"max=100"`
	ExistingContexts []string `json:"existingContexts" validate:"max=200"`
}

type extractResponse struct {
	JobID string                 `json:"jobId"`
	Terms []domain.TermCandidate `json:"terms"`
}

type progressEvent struct {
	Status string `json:"status"`
}

// PDF handles POST /extract/pdf.
func (h *ExtractHandler) PDF(w http.ResponseWriter, r *http.Request) {
	var req extractPDFRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.run(w, r, req.JobID, func(ctx context.Context, report extraction.ProgressFunc) ([]domain.TermCandidate, error) {
		return h.svc.ExtractFromPDF(ctx, req.PDFURL, req.Contexts, report)
	})
}

// URL handles POST /extract/url.
func (h *ExtractHandler) URL(w http.ResponseWriter, r *http.Request) {
	var req extractURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.run(w, r, req.JobID, func(ctx context.Context, report extraction.ProgressFunc) ([]domain.TermCandidate, error) {
		return h.svc.ExtractFromURL(ctx, req.URL, req.Contexts, report)
	})
}

// run executes one extraction with progress published under jobID. A
// missing jobID is generated. The id is always returned in JobIDHeader.
func (h *ExtractHandler) run(
	w http.ResponseWriter,
	r *http.Request,
	jobID string,
	extract func(context.Context, extraction.ProgressFunc) ([]domain.TermCandidate, error),
) {
	if jobID == "" {
		jobID = uuid.NewString()
	}
	defer h.progress.Finish(jobID)
	w.Header().Set(JobIDHeader, jobID)

	terms, err := extract(r.Context(), h.progress.Reporter(jobID))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if terms == nil {
		terms = []domain.TermCandidate{}
	}
	writeJSON(w, http.StatusOK, extractResponse{JobID: jobID, Terms: terms})
}

// Propose handles POST /extract/propose.
func (h *ExtractHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	proposal, err := h.svc.ProposeTerm(r.Context(), req.Term, req.Context, req.ExistingContexts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

// Progress handles GET /extract/progress/{jobID}. Past status lines are
// replayed, then new ones follow until the job finishes.
func (h *ExtractHandler) Progress(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if _, err := uuid.Parse(jobID); err != nil {
		writeValidation(w, domain.NewValidationError("jobID", "must be a UUID"))
		return
	}

	history, updates, cancel := h.progress.Subscribe(jobID)
	defer cancel()

	stream, err := startSSE(w)
	if err != nil {
		h.log.ErrorContext(r.Context(), "sse not supported", slog.String("error", err.Error()))
		return
	}

	for _, status := range history {
		if err := stream.Event("progress", progressEvent{Status: status}); err != nil {
			return
		}
	}

	ticker := time.NewTicker(sseKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case status, ok := <-updates:
			if !ok {
				stream.Event("done", progressEvent{}) //nolint:errcheck
				return
			}
			if err := stream.Event("progress", progressEvent{Status: status}); err != nil {
				return
			}
		case <-ticker.C:
			if err := stream.Ping(); err != nil {
				return
			}
		}
	}
}
