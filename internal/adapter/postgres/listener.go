package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Notification channels raised by the table triggers in migrations/.
const (
	ChannelTermsChanged     = "glossary_terms_changed"
	ChannelQuestionsChanged = "quiz_questions_changed"
)

const defaultReconnectDelay = 2 * time.Second

// Listener holds one dedicated connection that LISTENs on a fixed set of
// channels and fans every notification out to registered handlers.
//
// Handlers run on the listener goroutine and must not block. Every handler
// is invoked once whenever LISTEN is (re)established, since changes may have
// been missed before the connection was up.
type Listener struct {
	pool     *pgxpool.Pool
	channels []string
	log      *slog.Logger

	reconnectDelay time.Duration

	mu       sync.Mutex
	nextID   int
	handlers map[string]map[int]func()
}

// NewListener creates a Listener for the given channels. Call Run to start it.
func NewListener(pool *pgxpool.Pool, logger *slog.Logger, channels ...string) *Listener {
	return &Listener{
		pool:           pool,
		channels:       channels,
		log:            logger.With("component", "pg_listener"),
		reconnectDelay: defaultReconnectDelay,
		handlers:       make(map[string]map[int]func()),
	}
}

// Subscribe registers fn for notifications on channel and returns a function
// that removes it. Subscribing to a channel the Listener does not LISTEN on is
// allowed but fn is then only called after reconnects.
func (l *Listener) Subscribe(channel string, fn func()) (unsubscribe func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++

	if l.handlers[channel] == nil {
		l.handlers[channel] = make(map[int]func())
	}
	l.handlers[channel][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.handlers[channel], id)
		})
	}
}

// Run listens until ctx is cancelled, reconnecting after connection errors.
// It returns nil on cancellation.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)

		if ctx.Err() != nil {
			return nil
		}

		l.log.WarnContext(ctx, "listener connection lost",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", l.reconnectDelay),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	pooled, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener connection: %w", err)
	}
	// The connection carries LISTEN state; never hand it back to the pool.
	conn := pooled.Hijack()
	defer conn.Close(context.Background())

	for _, ch := range l.channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			return fmt.Errorf("listen %s: %w", ch, err)
		}
	}

	l.log.InfoContext(ctx, "listening for table changes", slog.Any("channels", l.channels))

	l.dispatchAll()

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		l.dispatch(n.Channel)
	}
}

func (l *Listener) snapshot(channel string) []func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	fns := make([]func(), 0, len(l.handlers[channel]))
	for _, fn := range l.handlers[channel] {
		fns = append(fns, fn)
	}
	return fns
}

func (l *Listener) dispatch(channel string) {
	for _, fn := range l.snapshot(channel) {
		fn()
	}
}

func (l *Listener) dispatchAll() {
	l.mu.Lock()
	channels := make([]string, 0, len(l.handlers))
	for ch := range l.handlers {
		channels = append(channels, ch)
	}
	l.mu.Unlock()

	for _, ch := range channels {
		l.dispatch(ch)
	}
}
