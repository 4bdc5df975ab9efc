package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/ctxutil"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/pkg/llmjson"
)

const (
	opExtractPDF = "extract_pdf"
	opExtractURL = "extract_url"
)

// Progress messages shown to the user while an import runs.
const (
	StatusPDFStart    = "Starte PDF-Analyse..."
	StatusSending     = "Sende Daten an das Sprachmodell..."
	StatusParsing     = "Verarbeite Antwort..."
	StatusDownloading = "Lade Inhalte herunter..."
	StatusPreparePDF  = "PDF wird vorbereitet..."
	StatusPrepareText = "Text wird vorbereitet..."
	StatusAnalysing   = "Analysiere Inhalte..."
	StatusFinishing   = "Abschließen..."
)

// ExtractFromPDF lets the model read the PDF at pdfURL and returns the term
// candidates it found. contexts defaults to the contexts in the glossary.
func (s *Service) ExtractFromPDF(ctx context.Context, pdfURL string, contexts []string, progress ProgressFunc) ([]domain.TermCandidate, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	pdfURL = strings.TrimSpace(pdfURL)
	if err := validateURL("pdf_url", pdfURL); err != nil {
		return nil, err
	}

	progress.report(StatusPDFStart)
	contexts = s.knownContexts(ctx, contexts)

	progress.report(StatusSending)
	raw, err := s.llm.Complete(ctx, domain.CompletionRequest{
		Operation:   opExtractPDF,
		System:      extractSystem,
		Prompt:      documentPrompt(contexts),
		Document:    &domain.Document{URL: pdfURL},
		Temperature: s.cfg.BulkTemperature,
		MaxTokens:   s.cfg.BulkMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction.ExtractFromPDF: %w", err)
	}

	progress.report(StatusParsing)
	terms := s.parseCandidates(ctx, raw)
	s.metrics.AddExtractedTerms("pdf", len(terms))

	s.log.InfoContext(ctx, "terms extracted from pdf",
		slog.String("url", pdfURL),
		slog.Int("terms", len(terms)),
	)
	return terms, nil
}

// ExtractFromURL downloads rawURL and extracts term candidates from it. PDF
// bodies are attached as documents; everything else is sent as text, cut to
// the configured length.
func (s *Service) ExtractFromURL(ctx context.Context, rawURL string, contexts []string, progress ProgressFunc) ([]domain.TermCandidate, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	rawURL = strings.TrimSpace(rawURL)
	if err := validateURL("url", rawURL); err != nil {
		return nil, err
	}

	contexts = s.knownContexts(ctx, contexts)

	progress.report(StatusDownloading)
	res, err := s.fetch.Fetch(ctx, rawURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("extraction.ExtractFromURL: %w", &domain.UpstreamError{Op: "fetch " + rawURL, Err: err})
	}

	req := domain.CompletionRequest{
		Operation:   opExtractURL,
		System:      extractSystem,
		Temperature: s.cfg.BulkTemperature,
		MaxTokens:   s.cfg.BulkMaxTokens,
	}
	if res.IsPDF() {
		progress.report(StatusPreparePDF)
		req.Prompt = documentPrompt(contexts)
		req.Document = &domain.Document{Data: res.Body}
	} else {
		progress.report(StatusPrepareText)
		req.Prompt = textPrompt(contexts, rawURL, truncateRunes(res.Text(), s.cfg.MaxTextRunes))
	}

	progress.report(StatusAnalysing)
	raw, err := s.llm.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("extraction.ExtractFromURL: %w", err)
	}

	progress.report(StatusFinishing)
	terms := s.parseCandidates(ctx, raw)
	s.metrics.AddExtractedTerms("url", len(terms))

	s.log.InfoContext(ctx, "terms extracted from url",
		slog.String("url", rawURL),
		slog.Bool("pdf", res.IsPDF()),
		slog.Int("terms", len(terms)),
	)
	return terms, nil
}

// parseCandidates decodes a bulk answer. Unparseable answers yield no terms.
func (s *Service) parseCandidates(ctx context.Context, raw string) []domain.TermCandidate {
	var items []domain.TermCandidate
	if err := llmjson.Decode(raw, &items); err != nil {
		if !errors.Is(err, llmjson.ErrUnparseable) {
			s.log.WarnContext(ctx, "decode extraction response", slog.String("error", err.Error()))
		} else {
			s.log.WarnContext(ctx, "unparseable extraction response", slog.Int("length", len(raw)))
		}
		return []domain.TermCandidate{}
	}
	return normalizeCandidates(items)
}

// normalizeCandidates trims fields, fills missing arrays and drops entries
// without a headword.
func normalizeCandidates(items []domain.TermCandidate) []domain.TermCandidate {
	out := make([]domain.TermCandidate, 0, len(items))
	for _, c := range items {
		c.Term = strings.TrimSpace(c.Term)
		if c.Term == "" {
			continue
		}
		c.Context = strings.TrimSpace(c.Context)
		c.DefinitionDe = strings.TrimSpace(c.DefinitionDe)
		c.DefinitionEn = strings.TrimSpace(c.DefinitionEn)
		c.EinfacheSprache = strings.TrimSpace(c.EinfacheSprache)
		c.Source = strings.TrimSpace(c.Source)
		c.Eselsleitern = cleanList(c.Eselsleitern)
		out = append(out, c)
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validateURL(field, raw string) error {
	if raw == "" {
		return domain.NewValidationError(field, "required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError(field, "must be an absolute http(s) URL")
	}
	return nil
}
