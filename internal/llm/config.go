package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the completion-service boundary. The
// API key is per-session: it comes from the environment or a CLI flag and
// is never written anywhere.
type Config struct {
	APIKey          string
	Model           string
	BaseURL         string
	MaxOutputTokens int
	TimeoutMs       int
	MaxRetries      int
	LogCalls        bool
}

// DefaultConfig returns a Config with sensible defaults and no credential.
func DefaultConfig() Config {
	return Config{
		Model:           "gpt-4o-mini",
		MaxOutputTokens: 1024,
		TimeoutMs:       60000,
		MaxRetries:      2,
		LogCalls:        false,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset value. DIARYSTAT_OPENAI_API_KEY takes
// precedence over the conventional OPENAI_API_KEY.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DIARYSTAT_OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("DIARYSTAT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DIARYSTAT_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("DIARYSTAT_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DIARYSTAT_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("DIARYSTAT_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// HasCredential reports whether an API key is present.
func (c Config) HasCredential() bool {
	return c.APIKey != ""
}
