// Package live turns change notifications into full-state snapshots.
package live

import (
	"context"
	"fmt"
	"log/slog"
)

// Notifier delivers a signal whenever rows behind channel change.
type Notifier interface {
	Subscribe(channel string, fn func()) (unsubscribe func())
}

// Watch loads the current state, hands it to deliver and then reloads and
// redelivers after every notification on channel until ctx ends or the
// returned stop function is called.
//
// The first delivery happens before Watch returns. Deliveries are serialized
// and bursts of notifications collapse into a single reload. A failing
// reload is logged and the previous snapshot stays in place.
func Watch[T any](
	ctx context.Context,
	n Notifier,
	channel string,
	load func(ctx context.Context) (T, error),
	deliver func(T),
	log *slog.Logger,
) (stop func(), err error) {
	dirty := make(chan struct{}, 1)

	// Subscribe before the first load so a change committed while it runs
	// still marks the snapshot dirty.
	unsubscribe := n.Subscribe(channel, func() {
		select {
		case dirty <- struct{}{}:
		default:
		}
	})

	initial, err := load(ctx)
	if err != nil {
		unsubscribe()
		return nil, fmt.Errorf("initial load %s: %w", channel, err)
	}
	deliver(initial)

	ctx, cancel := context.WithCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-dirty:
			}

			snapshot, err := load(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.WarnContext(ctx, "reload after change failed",
					slog.String("channel", channel),
					slog.String("error", err.Error()),
				)
				continue
			}
			deliver(snapshot)
		}
	}()

	return func() {
		unsubscribe()
		cancel()
		<-done
	}, nil
}
