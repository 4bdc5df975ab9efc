package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const sseKeepAlive = 25 * time.Second

// sseStream writes server-sent events. It is not safe for concurrent use.
type sseStream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// startSSE writes the event-stream headers. It fails when the response
// cannot be flushed.
func startSSE(w http.ResponseWriter) (*sseStream, error) {
	rc := http.NewResponseController(w)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		return nil, fmt.Errorf("flush sse headers: %w", err)
	}
	return &sseStream{w: w, rc: rc}, nil
}

// Event sends one named event with a JSON payload.
func (s *sseStream) Event(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", name, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	return s.rc.Flush()
}

// Ping sends a comment line to keep proxies from closing the connection.
func (s *sseStream) Ping() error {
	if _, err := fmt.Fprint(s.w, ": ping\n\n"); err != nil {
		return err
	}
	return s.rc.Flush()
}

// streamSnapshots subscribes for the lifetime of the request and forwards
// every delivered snapshot as one event. Snapshots that arrive while the
// previous one is still being written replace it; only the newest matters.
func streamSnapshots[T, R any](log *slog.Logger, w http.ResponseWriter, r *http.Request, event string, subscribe func(context.Context, func([]T)) (func(), error), convert func([]T) []R) {
	ctx := r.Context()
	latest := make(chan []T, 1)

	stop, err := subscribe(ctx, func(items []T) {
		select {
		case <-latest:
		default:
		}
		latest <- items
	})
	if err != nil {
		handleError(log, w, r, err)
		return
	}
	defer stop()

	stream, err := startSSE(w)
	if err != nil {
		log.ErrorContext(ctx, "sse not supported", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(sseKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case items := <-latest:
			if err := stream.Event(event, convert(items)); err != nil {
				log.DebugContext(ctx, "sse write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err := stream.Ping(); err != nil {
				return
			}
		}
	}
}
