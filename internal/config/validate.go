package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Capture.MaxContentLength <= 0 {
		return fmt.Errorf("capture.max_content_length must be > 0 (got %d)", c.Capture.MaxContentLength)
	}
	if c.Capture.MaxChunkItems <= 0 {
		return fmt.Errorf("capture.max_chunk_items must be > 0 (got %d)", c.Capture.MaxChunkItems)
	}

	if err := c.Conversion.validate(); err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if c.Retry.MaxAttempts == 0 {
		return fmt.Errorf("retry.max_attempts must be >= 1")
	}
	if c.Retry.MaxDelay < c.Retry.BaseDelay {
		return fmt.Errorf("retry.max_delay (%s) must be >= retry.base_delay (%s)", c.Retry.MaxDelay, c.Retry.BaseDelay)
	}

	if err := c.Oracle.validate(); err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	if c.RateLimit.SuggestPerMinute < 0 {
		return fmt.Errorf("rate_limit.suggest_per_minute must be >= 0 (got %d)", c.RateLimit.SuggestPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (c *ConversionConfig) validate() error {
	c.DefaultActionPriority = strings.ToUpper(strings.TrimSpace(c.DefaultActionPriority))
	if !domain.ActionPriority(c.DefaultActionPriority).IsValid() {
		return fmt.Errorf("default_action_priority %q is not one of LOW, MEDIUM, HIGH", c.DefaultActionPriority)
	}
	if c.DefaultActionDurationMin <= 0 {
		return fmt.Errorf("default_action_duration_min must be > 0 (got %d)", c.DefaultActionDurationMin)
	}
	if c.StaleAfter <= 0 {
		return fmt.Errorf("stale_after must be > 0 (got %s)", c.StaleAfter)
	}
	return nil
}

func (c *OracleConfig) validate() error {
	switch strings.ToLower(c.Provider) {
	case "stub":
	case "anthropic":
		if c.APIKey == "" {
			return fmt.Errorf("api_key is required for provider anthropic")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.MaxItems <= 0 {
		return fmt.Errorf("max_items must be > 0 (got %d)", c.MaxItems)
	}
	return nil
}
