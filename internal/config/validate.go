package config

import (
	"fmt"
	"strings"
)

// MaxChunkSize is the largest number of writes grouped into one maintenance transaction.
const MaxChunkSize = 500

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.AllowedEmailDomain) == "" {
		return fmt.Errorf("auth.allowed_email_domain must not be empty")
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in 4..31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.LLM.RequestsPerMinute < 1 {
		return fmt.Errorf("llm.requests_per_minute must be >= 1 (got %d)", c.LLM.RequestsPerMinute)
	}

	if err := c.Extraction.validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	if c.Maintenance.ChunkSize < 1 || c.Maintenance.ChunkSize > MaxChunkSize {
		return fmt.Errorf("maintenance.chunk_size must be in 1..%d (got %d)", MaxChunkSize, c.Maintenance.ChunkSize)
	}

	return nil
}

func (e *ExtractionConfig) validate() error {
	if e.FetchAttempts < 1 {
		return fmt.Errorf("fetch_attempts must be >= 1 (got %d)", e.FetchAttempts)
	}
	if e.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %v)", e.FetchTimeout)
	}
	if e.MaxTextRunes <= 0 {
		return fmt.Errorf("max_text_runes must be > 0 (got %d)", e.MaxTextRunes)
	}
	if err := checkTemperature("bulk_temperature", e.BulkTemperature); err != nil {
		return err
	}
	return checkTemperature("proposal_temperature", e.ProposalTemperature)
}

func (q *QuizConfig) validate() error {
	if q.DefaultCount < 1 || q.DefaultCount > q.MaxCount {
		return fmt.Errorf("default_count must be in 1..max_count (got %d, max %d)", q.DefaultCount, q.MaxCount)
	}
	if q.MinTermsForLLM < 1 {
		return fmt.Errorf("min_terms_for_llm must be >= 1 (got %d)", q.MinTermsForLLM)
	}
	return checkTemperature("generate_temperature", q.GenerateTemperature)
}

func checkTemperature(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0,1] (got %v)", name, v)
	}
	return nil
}
