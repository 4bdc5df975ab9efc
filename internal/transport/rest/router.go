package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Terms   *TermHandler
	Quiz    *QuizHandler
	Extract *ExtractHandler
	Profile *ProfileHandler
}

// RouterDeps are the cross-cutting collaborators of the HTTP stack.
type RouterDeps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Tokens    middleware.TokenValidator
	Limiter   *middleware.RateLimiter
	ServerCfg config.ServerConfig
	CORSCfg   config.CORSConfig
	LLMCfg    config.LLMConfig
}

// NewRouter builds the chi router for the public API.
//
// Auth runs before Logger so access logs carry the caller id. Routes that
// call the language model share one per-caller rate limit.
func NewRouter(h Handlers, d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORSCfg),
		bodyLimit(d.ServerCfg.MaxUploadBytes),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
	)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	llmLimit := d.Limiter.Limit("llm", d.LLMCfg.RequestsPerMinute)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/terms", func(r chi.Router) {
				r.Get("/", h.Terms.List)
				r.Post("/", h.Terms.Create)
				r.Post("/batch", h.Terms.CreateBatch)
				r.Get("/stream", h.Terms.Stream)
				r.Get("/duplicate", h.Terms.Duplicate)
				r.Patch("/{id}", h.Terms.Update)
				r.Delete("/{id}", h.Terms.Delete)
				r.Post("/{id}/approve", h.Terms.Approve)
			})
			r.Get("/contexts", h.Terms.Contexts)

			r.Route("/quiz", func(r chi.Router) {
				r.Get("/questions", h.Quiz.ListQuestions)
				r.Post("/questions", h.Quiz.AddQuestion)
				r.Get("/questions/stream", h.Quiz.StreamQuestions)
				r.Delete("/questions/{id}", h.Quiz.DeleteQuestion)
				r.Post("/start", h.Quiz.Start)
				r.With(llmLimit).Post("/generate", h.Quiz.Generate)
				r.Get("/results", h.Quiz.ListResults)
				r.Post("/results", h.Quiz.SaveResult)
				r.Delete("/results/{id}", h.Quiz.DeleteResult)
			})

			r.Route("/extract", func(r chi.Router) {
				r.With(llmLimit).Post("/pdf", h.Extract.PDF)
				r.With(llmLimit).Post("/url", h.Extract.URL)
				r.With(llmLimit).Post("/propose", h.Extract.Propose)
				r.Get("/progress/{jobID}", h.Extract.Progress)
			})

			r.Get("/me", h.Profile.Get)
			r.Patch("/me", h.Profile.Update)
			r.Get("/avatars", h.Profile.Avatars)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func bodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
