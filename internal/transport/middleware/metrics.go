package middleware

import (
	"net/http"
	"time"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
)

// Metrics records request counts and latencies per route pattern. Unrouted
// requests are grouped under "unmatched" to keep label cardinality bounded.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := routePattern(r)
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
