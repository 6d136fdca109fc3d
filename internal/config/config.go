package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Capture    CaptureConfig    `yaml:"capture"`
	Conversion ConversionConfig `yaml:"conversion"`
	Retry      RetryConfig      `yaml:"retry"`
	Oracle     OracleConfig     `yaml:"oracle"`
	Redis      RedisConfig      `yaml:"redis"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. Embedded migrations
// run at startup unless SkipMigrate is set.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the identity service; this service only validates them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"outcomes"`
	// AccessTTL only affects tokens minted locally (tests, dev tooling).
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CaptureConfig bounds what a user may capture.
type CaptureConfig struct {
	MaxContentLength int `yaml:"max_content_length" env:"CAPTURE_MAX_CONTENT_LENGTH" env-default:"2000"`
	MaxInboxItems    int `yaml:"max_inbox_items"    env:"CAPTURE_MAX_INBOX_ITEMS"    env-default:"1000"`
	MaxChunkItems    int `yaml:"max_chunk_items"    env:"CAPTURE_MAX_CHUNK_ITEMS"    env-default:"100"`
}

// ConversionConfig holds chunk-to-outcome conversion settings.
type ConversionConfig struct {
	DefaultActionPriority    string `yaml:"default_action_priority"     env:"CONVERSION_DEFAULT_ACTION_PRIORITY"     env-default:"MEDIUM"`
	DefaultActionDurationMin int    `yaml:"default_action_duration_min" env:"CONVERSION_DEFAULT_ACTION_DURATION_MIN" env-default:"30"`
	// StaleAfter is how long an in-flight conversion may sit before another
	// request (or the reconciler) may take it over.
	StaleAfter time.Duration `yaml:"stale_after" env:"CONVERSION_STALE_AFTER" env-default:"2m"`
	// SingleTransaction runs steps 1-4 in one database transaction instead of
	// one transaction per saga step.
	SingleTransaction bool `yaml:"single_transaction" env:"CONVERSION_SINGLE_TRANSACTION" env-default:"false"`
}

// RetryConfig bounds internal retries of transient store errors.
type RetryConfig struct {
	MaxAttempts uint64        `yaml:"max_attempts" env:"RETRY_MAX_ATTEMPTS" env-default:"3"`
	BaseDelay   time.Duration `yaml:"base_delay"   env:"RETRY_BASE_DELAY"   env-default:"50ms"`
	MaxDelay    time.Duration `yaml:"max_delay"    env:"RETRY_MAX_DELAY"    env-default:"1s"`
}

// OracleConfig holds suggestion oracle settings.
type OracleConfig struct {
	Provider string        `yaml:"provider" env:"ORACLE_PROVIDER" env-default:"stub"`
	APIKey   string        `yaml:"api_key"  env:"ORACLE_API_KEY"`
	Model    string        `yaml:"model"    env:"ORACLE_MODEL"    env-default:"claude-sonnet-4-5"`
	Timeout  time.Duration `yaml:"timeout"  env:"ORACLE_TIMEOUT"  env-default:"45s"`
	MaxItems int           `yaml:"max_items" env:"ORACLE_MAX_ITEMS" env-default:"60"`
	JobTTL   time.Duration `yaml:"job_ttl"  env:"ORACLE_JOB_TTL"  env-default:"30m"`
}

// RedisConfig holds the optional suggestion cache settings.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"REDIS_TTL"      env-default:"1h"`
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// RateLimitConfig bounds per-caller request rates. Zero disables a limit.
type RateLimitConfig struct {
	SuggestPerMinute int           `yaml:"suggest_per_minute" env:"RATE_LIMIT_SUGGEST_PER_MINUTE" env-default:"10"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}
