package maintenance

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
)

// Attribution of rows written by the jobs.
const (
	SeedAuthor = "seed-script"
	SyncAuthor = "sync-script"
)

const (
	defaultChunkSize = 500
	maxChunkSize     = 500
)

//go:generate moq -out term_store_mock_test.go -pkg maintenance . TermStore

// TermStore is the term persistence used by the jobs.
type TermStore interface {
	CreateMany(ctx context.Context, terms []domain.GlossaryTerm) (int64, error)
	Create(ctx context.Context, t domain.GlossaryTerm) (uuid.UUID, error)
	UpdateByTerm(ctx context.Context, term string, patch domain.TermPatch) (int64, error)
	ListAll(ctx context.Context) ([]domain.GlossaryTerm, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result counts the outcome of one job run.
type Result struct {
	Added    int
	Updated  int
	Deleted  int
	Skipped  int
	Errors   int
	Groups   int
	Duration time.Duration
}

// HasErrors reports whether any row or chunk failed.
func (r Result) HasErrors() bool { return r.Errors > 0 }

// Jobs runs the maintenance jobs against a term store.
type Jobs struct {
	log       *slog.Logger
	terms     TermStore
	tx        txManager
	metrics   *metrics.Metrics
	chunkSize int
}

// New creates Jobs. chunkSize bounds the rows written per statement and is
// clamped to 1..500; zero selects 500.
func New(logger *slog.Logger, terms TermStore, tx txManager, m *metrics.Metrics, chunkSize int) *Jobs {
	switch {
	case chunkSize <= 0:
		chunkSize = defaultChunkSize
	case chunkSize > maxChunkSize:
		chunkSize = maxChunkSize
	}
	return &Jobs{
		log:       logger.With("component", "maintenance"),
		terms:     terms,
		tx:        tx,
		metrics:   m,
		chunkSize: chunkSize,
	}
}

// Seed adds every row as an approved term attributed to SeedAuthor. Rows
// are written in chunks; a failing chunk is logged and counted as errors
// and the remaining chunks are still written.
func (j *Jobs) Seed(ctx context.Context, rows Rows) (Result, error) {
	start := time.Now()
	res := Result{Skipped: len(rows.Malformed)}
	j.logMalformed(ctx, rows.Malformed)

	terms := make([]domain.GlossaryTerm, len(rows.Rows))
	for i, r := range rows.Rows {
		terms[i] = r.toTerm(SeedAuthor, domain.TermStatusApproved)
	}

	for i, chunk := range chunks(terms, j.chunkSize) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		n, err := j.terms.CreateMany(ctx, chunk)
		if err != nil {
			j.log.ErrorContext(ctx, "seed chunk failed",
				slog.Int("chunk", i),
				slog.Int("rows", len(chunk)),
				slog.String("error", err.Error()),
			)
			res.Errors += len(chunk)
			continue
		}
		res.Added += int(n)
	}

	res.Duration = time.Since(start)
	j.record("seed", res)
	return res, nil
}

// Sync overwrites the content of every term whose headword equals a row's
// term and adds rows without a match as approved terms attributed to
// SyncAuthor. Per-row failures are logged and counted.
func (j *Jobs) Sync(ctx context.Context, rows Rows) (Result, error) {
	start := time.Now()
	res := Result{Skipped: len(rows.Malformed)}
	j.logMalformed(ctx, rows.Malformed)

	for _, r := range rows.Rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		n, err := j.terms.UpdateByTerm(ctx, r.Term, r.patch())
		if err != nil {
			j.log.ErrorContext(ctx, "sync update failed", slog.String("term", r.Term), slog.String("error", err.Error()))
			res.Errors++
			continue
		}
		if n > 0 {
			j.log.DebugContext(ctx, "term updated", slog.String("term", r.Term), slog.Int64("rows", n))
			res.Updated++
			continue
		}

		if _, err := j.terms.Create(ctx, r.toTerm(SyncAuthor, domain.TermStatusApproved)); err != nil {
			j.log.ErrorContext(ctx, "sync add failed", slog.String("term", r.Term), slog.String("error", err.Error()))
			res.Errors++
			continue
		}
		res.Added++
	}

	res.Duration = time.Since(start)
	j.record("sync", res)
	return res, nil
}

// Deduplicate groups terms by trimmed, lowercased term and context, keeps
// the most recently created term of each group and deletes the others.
// Each chunk of deletions commits on its own; a failed chunk is logged and
// counted and later chunks still run. Running it again deletes nothing.
func (j *Jobs) Deduplicate(ctx context.Context) (Result, error) {
	start := time.Now()

	terms, err := j.terms.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("maintenance.Deduplicate: %w", err)
	}

	doomed, groups := Duplicates(terms)
	res := Result{Groups: groups}

	j.log.InfoContext(ctx, "duplicates found",
		slog.Int("terms", len(terms)),
		slog.Int("unique", groups),
		slog.Int("to_delete", len(doomed)),
	)

	for i, chunk := range chunks(doomed, j.chunkSize) {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		var deleted int64
		err := j.tx.RunInTx(ctx, func(ctx context.Context) error {
			n, err := j.terms.DeleteMany(ctx, chunk)
			deleted = n
			return err
		})
		if err != nil {
			j.log.ErrorContext(ctx, "delete chunk failed",
				slog.Int("chunk", i),
				slog.Int("ids", len(chunk)),
				slog.String("error", err.Error()),
			)
			res.Errors += len(chunk)
			continue
		}
		res.Deleted += int(deleted)
	}

	res.Duration = time.Since(start)
	j.record("dedup", res)
	return res, nil
}

// Duplicates returns the ids to delete so that one term per
// (term, context) key remains, and the number of distinct keys. The kept
// term is the one with the latest CreatedAt; ties keep the earlier entry of
// terms.
func Duplicates(terms []domain.GlossaryTerm) (doomed []uuid.UUID, groups int) {
	byKey := make(map[string][]domain.GlossaryTerm)
	var order []string
	for _, t := range terms {
		k := domain.DuplicateKey(t.Term, t.Context)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], t)
	}

	for _, k := range order {
		group := byKey[k]
		if len(group) < 2 {
			continue
		}
		slices.SortStableFunc(group, func(a, b domain.GlossaryTerm) int {
			return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
		})
		for _, t := range group[1:] {
			doomed = append(doomed, t.ID)
		}
	}
	return doomed, len(order)
}

func chunks[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

func (j *Jobs) logMalformed(ctx context.Context, malformed []string) {
	for _, first := range malformed {
		j.log.WarnContext(ctx, "skipping malformed row", slog.String("first_cell", first))
	}
}

func (j *Jobs) record(job string, res Result) {
	j.metrics.AddMaintenance(job, "added", res.Added)
	j.metrics.AddMaintenance(job, "updated", res.Updated)
	j.metrics.AddMaintenance(job, "deleted", res.Deleted)
	j.metrics.AddMaintenance(job, "skipped", res.Skipped)
	j.metrics.AddMaintenance(job, "error", res.Errors)

	j.log.Info("job completed",
		slog.String("job", job),
		slog.Int("added", res.Added),
		slog.Int("updated", res.Updated),
		slog.Int("deleted", res.Deleted),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Duration("duration", res.Duration),
	)
}
