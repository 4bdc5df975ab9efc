package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/llm"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres/question"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres/result"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres/term"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres/user"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/auth"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
	authsvc "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/auth"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/extraction"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/glossary"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/quiz"
	usersvc "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/user"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/transport/middleware"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/transport/rest"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/migrations"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and the HTTP API, and serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("llm_enabled", cfg.LLM.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	m := metrics.New("insel_glossar")

	// Repositories.
	txm := postgres.NewTxManager(pool)
	termRepo := term.New(pool)
	questionRepo := question.New(pool)
	resultRepo := result.New(pool)
	userRepo := user.New(pool)

	listener := postgres.NewListener(pool, logger,
		postgres.ChannelTermsChanged,
		postgres.ChannelQuestionsChanged,
	)

	// Services.
	view := glossary.NewView()
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, userRepo)
	glossaryService := glossary.NewService(logger, termRepo, userRepo, listener, postgres.ChannelTermsChanged)

	completer := newCompleter(cfg.LLM, m, logger)
	quizService := quiz.NewService(logger, quiz.Deps{
		Questions: questionRepo,
		Terms:     termRepo,
		Results:   resultRepo,
		Tx:        txm,
		LLM:       completer,
		Notifier:  listener,
		Channel:   postgres.ChannelQuestionsChanged,
		Snapshot:  view,
		Metrics:   m,
	}, cfg.Quiz)

	fetcher := extraction.NewHTTPFetcher(&http.Client{}, extraction.RetryPolicy{
		Attempts: cfg.Extraction.FetchAttempts,
		Backoff:  cfg.Extraction.FetchBackoff,
		Timeout:  cfg.Extraction.FetchTimeout,
	}, cfg.Extraction.MaxFetchBytes)
	extractionService := extraction.NewService(logger, completer, termRepo, fetcher, m, cfg.Extraction)
	progress := extraction.NewProgressBroker()

	// Keep the in-memory view in step with the store.
	stopTerms, err := glossaryService.Subscribe(ctx, view.SetTerms)
	if err != nil {
		return fmt.Errorf("load glossary: %w", err)
	}
	defer stopTerms()

	stopQuestions, err := quizService.SubscribeQuestions(ctx, view.SetQuestions)
	if err != nil {
		return fmt.Errorf("load quiz questions: %w", err)
	}
	defer stopQuestions()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, view, completer, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		Terms:   rest.NewTermHandler(glossaryService, view, logger),
		Quiz:    rest.NewQuizHandler(quizService, view, logger),
		Extract: rest.NewExtractHandler(extractionService, progress, logger),
		Profile: rest.NewProfileHandler(userService, logger),
	}, rest.RouterDeps{
		Logger:    logger,
		Metrics:   m,
		Tokens:    authService,
		Limiter:   limiter,
		ServerCfg: cfg.Server,
		CORSCfg:   cfg.CORS,
		LLMCfg:    cfg.LLM,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return listener.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// completer is the language model as seen by the services and the health
// endpoint.
type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
	Status() string
}

// newCompleter returns the Anthropic client, or a stub that fails every call
// with a clear message when no API key is configured.
func newCompleter(cfg config.LLMConfig, m *metrics.Metrics, logger *slog.Logger) completer {
	if !cfg.Enabled() {
		logger.Warn("LLM_API_KEY not set; extraction and quiz generation are disabled")
		return llm.Disabled{}
	}
	return llm.New(cfg, m, logger)
}
