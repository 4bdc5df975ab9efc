package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
)

// exposedHeaders lists the response headers browser clients may read.
var exposedHeaders = []string{"X-Request-Id", "X-Job-Id"}

// CORS answers preflight requests and decorates responses for the
// configured origins. A "*" origin list accepts any origin and echoes it
// back, so credentialed browser requests keep working.
func CORS(cfg config.CORSConfig) Middleware {
	opts := cors.Options{
		AllowedMethods:   splitList(cfg.AllowedMethods),
		AllowedHeaders:   splitList(cfg.AllowedHeaders),
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	origins := splitList(cfg.AllowedOrigins)
	if containsWildcard(origins) {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
	} else {
		opts.AllowedOrigins = origins
	}

	return cors.Handler(opts)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
