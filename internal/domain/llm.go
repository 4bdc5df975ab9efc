package domain

// CompletionRequest is one prompt sent to the language model.
type CompletionRequest struct {
	// Operation names the caller for logs and metrics, e.g. "extract_pdf".
	Operation   string
	System      string
	Prompt      string
	Document    *Document
	Temperature float64
	MaxTokens   int64
}

// Document is a PDF attached to a completion. Exactly one of URL or Data is set.
type Document struct {
	URL  string
	Data []byte
}
