// Package llm adapts the Anthropic Messages API to the single completion
// call the glossary services need, guarded by a circuit breaker.
package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/metrics"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("empty model response")

// messageCreator is the subset of anthropic.MessageService used here.
type messageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Client sends completion requests to Claude.
type Client struct {
	api     messageCreator
	model   anthropic.Model
	breaker *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
	log     *slog.Logger
}

// New creates a Client backed by the Anthropic API.
func New(cfg config.LLMConfig, m *metrics.Metrics, logger *slog.Logger) *Client {
	api := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return newClient(&api.Messages, cfg, m, logger)
}

func newClient(api messageCreator, cfg config.LLMConfig, m *metrics.Metrics, logger *slog.Logger) *Client {
	log := logger.With("adapter", "llm")
	return &Client{
		api:     api,
		model:   anthropic.Model(cfg.Model),
		breaker: newBreaker(cfg, log),
		metrics: m,
		log:     log,
	}
}

// Status reports the breaker state: "ok" while closed, otherwise
// "open" or "half-open".
func (c *Client) Status() string {
	if st := c.breaker.State(); st != gobreaker.StateClosed {
		return st.String()
	}
	return "ok"
}

// Complete runs one request and returns the concatenated text of the answer.
// Failures of the API and an open breaker are reported as *domain.UpstreamError.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	op := req.Operation
	if op == "" {
		op = "completion"
	}

	start := time.Now()
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, req)
	})
	elapsed := time.Since(start)

	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		c.metrics.ObserveLLM(op, outcome, elapsed)

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.log.WarnContext(ctx, "llm call failed",
			slog.String("operation", op),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return "", &domain.UpstreamError{Op: "llm " + op, Err: err}
	}

	c.metrics.ObserveLLM(op, "ok", elapsed)
	return res.(string), nil
}

func (c *Client) send(ctx context.Context, req domain.CompletionRequest) (string, error) {
	msg, err := c.api.New(ctx, buildParams(c.model, req))
	if err != nil {
		return "", fmt.Errorf("messages api: %w", err)
	}

	text := responseText(msg)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func buildParams(model anthropic.Model, req domain.CompletionRequest) anthropic.MessageNewParams {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, 2)
	if doc := req.Document; doc != nil {
		if doc.URL != "" {
			blocks = append(blocks, anthropic.NewDocumentBlock(anthropic.URLPDFSourceParam{URL: doc.URL}))
		} else {
			blocks = append(blocks, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
				Data: base64.StdEncoding.EncodeToString(doc.Data),
			}))
		}
	}
	blocks = append(blocks, anthropic.NewTextBlock(req.Prompt))

	params := anthropic.MessageNewParams{
		Model:       model,
		MaxTokens:   req.MaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return params
}

func responseText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
