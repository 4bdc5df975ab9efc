package llm

import (
	"context"
	"errors"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// ErrNotConfigured is wrapped by every answer of Disabled.
var ErrNotConfigured = errors.New("language model not configured")

// Disabled stands in for Client when no API key is set. Every call fails
// as an upstream error so the HTTP layer answers 502.
type Disabled struct{}

// Complete always fails.
func (Disabled) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	return "", &domain.UpstreamError{Op: "llm " + req.Operation, Err: ErrNotConfigured}
}

// Status always reports "disabled".
func (Disabled) Status() string { return "disabled" }
