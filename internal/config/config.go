package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	LLM         LLMConfig         `yaml:"llm"`
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Quiz        QuizConfig        `yaml:"quiz"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout is zero by default because SSE streams stay open.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"insel-glossar"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"12h"`
	AllowedEmailDomain string        `yaml:"allowed_email_domain" env:"AUTH_ALLOWED_EMAIL_DOMAIN" env-default:"insel.ch"`
	MinPasswordLength  int           `yaml:"min_password_length"  env:"AUTH_MIN_PASSWORD_LENGTH"  env-default:"6"`
	PasswordHashCost   int           `yaml:"password_hash_cost"   env:"AUTH_PASSWORD_HASH_COST"   env-default:"12"`
}

// LLMConfig holds settings of the language model used for extraction and quiz generation.
type LLMConfig struct {
	APIKey           string        `yaml:"api_key"            env:"LLM_API_KEY"`
	Model            string        `yaml:"model"              env:"LLM_MODEL"              env-default:"claude-sonnet-4-5"`
	BreakerFailures  uint32        `yaml:"breaker_failures"   env:"LLM_BREAKER_FAILURES"   env-default:"5"`
	BreakerOpenDelay time.Duration `yaml:"breaker_open_delay" env:"LLM_BREAKER_OPEN_DELAY" env-default:"30s"`

	// RequestsPerMinute limits LLM-backed endpoints per user.
	RequestsPerMinute int `yaml:"requests_per_minute" env:"LLM_REQUESTS_PER_MINUTE" env-default:"10"`
}

// Enabled reports whether an API key is configured.
func (c LLMConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ExtractionConfig controls URL fetching and model sampling for term extraction.
type ExtractionConfig struct {
	FetchAttempts       int           `yaml:"fetch_attempts"        env:"EXTRACTION_FETCH_ATTEMPTS"        env-default:"3"`
	FetchBackoff        time.Duration `yaml:"fetch_backoff"         env:"EXTRACTION_FETCH_BACKOFF"         env-default:"1s"`
	FetchTimeout        time.Duration `yaml:"fetch_timeout"         env:"EXTRACTION_FETCH_TIMEOUT"         env-default:"30s"`
	MaxTextRunes        int           `yaml:"max_text_runes"        env:"EXTRACTION_MAX_TEXT_RUNES"        env-default:"30000"`
	MaxFetchBytes       int64         `yaml:"max_fetch_bytes"       env:"EXTRACTION_MAX_FETCH_BYTES"       env-default:"20971520"`
	BulkTemperature     float64       `yaml:"bulk_temperature"      env:"EXTRACTION_BULK_TEMPERATURE"      env-default:"0.3"`
	BulkMaxTokens       int64         `yaml:"bulk_max_tokens"       env:"EXTRACTION_BULK_MAX_TOKENS"       env-default:"8192"`
	ProposalTemperature float64       `yaml:"proposal_temperature"  env:"EXTRACTION_PROPOSAL_TEMPERATURE"  env-default:"0.7"`
	ProposalMaxTokens   int64         `yaml:"proposal_max_tokens"   env:"EXTRACTION_PROPOSAL_MAX_TOKENS"   env-default:"2048"`
}

// QuizConfig holds quiz settings.
type QuizConfig struct {
	DefaultCount        int     `yaml:"default_count"        env:"QUIZ_DEFAULT_COUNT"        env-default:"10"`
	MaxCount            int     `yaml:"max_count"            env:"QUIZ_MAX_COUNT"            env-default:"50"`
	MinTermsForLLM      int     `yaml:"min_terms_for_llm"    env:"QUIZ_MIN_TERMS_FOR_LLM"    env-default:"4"`
	DefaultTermCount    int     `yaml:"default_term_count"   env:"QUIZ_DEFAULT_TERM_COUNT"   env-default:"10"`
	GenerateTemperature float64 `yaml:"generate_temperature" env:"QUIZ_GENERATE_TEMPERATURE" env-default:"0.7"`
	GenerateMaxTokens   int64   `yaml:"generate_max_tokens"  env:"QUIZ_GENERATE_MAX_TOKENS"  env-default:"4096"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MaintenanceConfig holds settings of the batch jobs (seed, sync, dedup).
type MaintenanceConfig struct {
	ChunkSize int `yaml:"chunk_size" env:"MAINTENANCE_CHUNK_SIZE" env-default:"500"`
}
