package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Resource is a downloaded document.
type Resource struct {
	URL         string
	ContentType string
	Body        []byte
}

// IsPDF reports whether the server declared the body as PDF.
func (r *Resource) IsPDF() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "application/pdf")
}

// IsHTML reports whether the body is an HTML page.
func (r *Resource) IsHTML() bool {
	mt, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return strings.Contains(strings.ToLower(r.ContentType), "html")
	}
	return mt == "text/html" || mt == "application/xhtml+xml"
}

// Text returns the readable text of the resource. HTML pages go through
// readability first; when that yields nothing the raw body is used.
func (r *Resource) Text() string {
	if r.IsHTML() {
		if u, err := url.Parse(r.URL); err == nil {
			article, err := readability.FromReader(bytes.NewReader(r.Body), u)
			if err == nil && strings.TrimSpace(article.TextContent) != "" {
				return strings.TrimSpace(article.TextContent)
			}
		}
	}
	return strings.ToValidUTF8(string(r.Body), "�")
}

// HTTPFetcher downloads resources with retries and a body size limit.
type HTTPFetcher struct {
	client   *http.Client
	policy   RetryPolicy
	maxBytes int64
}

// NewHTTPFetcher creates a fetcher. A nil client uses a client without
// global timeout; each attempt is bounded by policy.Timeout instead.
func NewHTTPFetcher(client *http.Client, policy RetryPolicy, maxBytes int64) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Transport: http.DefaultTransport}
	}
	return &HTTPFetcher{client: client, policy: policy, maxBytes: maxBytes}
}

// Fetch downloads rawURL. Non-2xx answers count as failed attempts.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Resource, error) {
	var res *Resource
	err := f.policy.Do(ctx, func(ctx context.Context) error {
		r, err := f.get(ctx, rawURL)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (f *HTTPFetcher) get(ctx context.Context, rawURL string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "insel-glossar/1.0")
	req.Header.Set("Accept", "application/pdf, text/html;q=0.9, text/plain;q=0.8, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if f.maxBytes > 0 && resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("content length %d exceeds limit of %d bytes", resp.ContentLength, f.maxBytes)
	}

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("body exceeds limit of %d bytes", f.maxBytes)
	}

	return &Resource{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
