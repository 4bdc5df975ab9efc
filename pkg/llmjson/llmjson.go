// Package llmjson decodes JSON answers of language models, which are either
// bare JSON or JSON wrapped in a markdown code fence.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnparseable is returned when neither the raw text nor a fenced block
// holds valid JSON for the target.
var ErrUnparseable = errors.New("unparseable model response")

var fence = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// Decode parses raw into v. It first tries raw as strict JSON and then the
// contents of the first fenced code block.
func Decode(raw string, v any) error {
	raw = strings.TrimSpace(raw)

	err := json.Unmarshal([]byte(raw), v)
	if err == nil {
		return nil
	}

	m := fence.FindStringSubmatch(raw)
	if m == nil {
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if err := json.Unmarshal([]byte(m[1]), v); err != nil {
		return fmt.Errorf("%w: fenced block: %v", ErrUnparseable, err)
	}
	return nil
}
