// Package quiz builds multiple-choice quizzes from saved questions and
// glossary terms, generates new questions with the language model and
// keeps per-user results.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questionRepo interface {
	Create(ctx context.Context, q domain.QuizQuestion) (string, error)
	CreateMany(ctx context.Context, qs []domain.QuizQuestion) ([]string, error)
	ListAll(ctx context.Context) ([]domain.QuizQuestion, error)
	Delete(ctx context.Context, id string) error
}

type termRepo interface {
	ListApproved(ctx context.Context, limit uint64) ([]domain.GlossaryTerm, error)
}

type resultRepo interface {
	Create(ctx context.Context, res domain.QuizResult) (*domain.QuizResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QuizResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]domain.QuizResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

type changeNotifier interface {
	Subscribe(channel string, fn func()) (unsubscribe func())
}

// snapshotSource exposes the last delivered term and question snapshots.
type snapshotSource interface {
	Terms() []domain.GlossaryTerm
	Questions() []domain.QuizQuestion
}

// Deps bundles the collaborators of Service.
type Deps struct {
	Questions questionRepo
	Terms     termRepo
	Results   resultRepo
	Tx        txManager
	LLM       completer
	Notifier  changeNotifier
	Channel   string
	Snapshot  snapshotSource
	Metrics   *metrics.Metrics
}

// Service implements quiz operations.
type Service struct {
	log       *slog.Logger
	questions questionRepo
	terms     termRepo
	results   resultRepo
	tx        txManager
	llm       completer
	notifier  changeNotifier
	channel   string
	snapshot  snapshotSource
	metrics   *metrics.Metrics
	cfg       config.QuizConfig
	newRand   func() Shuffler
}

// NewService creates a new quiz service instance.
func NewService(logger *slog.Logger, deps Deps, cfg config.QuizConfig) *Service {
	return &Service{
		log:       logger.With("service", "quiz"),
		questions: deps.Questions,
		terms:     deps.Terms,
		results:   deps.Results,
		tx:        deps.Tx,
		llm:       deps.LLM,
		notifier:  deps.Notifier,
		channel:   deps.Channel,
		snapshot:  deps.Snapshot,
		metrics:   deps.Metrics,
		cfg:       cfg,
		newRand: func() Shuffler {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}
