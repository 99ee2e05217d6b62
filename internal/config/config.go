// ABOUTME: Centralized configuration for the clipper pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds all configuration for one pipeline run
type Config struct {
	// OpenAI settings
	OpenAIKey    string
	WhisperModel string
	Timeout      time.Duration
	MaxRetries   int
	RetryDelay   time.Duration

	// Pipeline settings
	WindowSeconds float64
	TargetSeconds float64
	TmpDir        string

	// Logging settings
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		WhisperModel:  getEnv("CLIPPER_WHISPER_MODEL", openai.Whisper1),
		Timeout:       getEnvDuration("OPENAI_TIMEOUT", 5*time.Minute),
		MaxRetries:    getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:    getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		WindowSeconds: getEnvFloat("CLIPPER_WINDOW_SECONDS", 120),
		TargetSeconds: getEnvFloat("CLIPPER_TARGET_SECONDS", 30),
		TmpDir:        getEnv("CLIPPER_TMPDIR", os.TempDir()),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.WindowSeconds <= 0 {
		return fmt.Errorf("CLIPPER_WINDOW_SECONDS must be positive, got %v", c.WindowSeconds)
	}
	if c.TargetSeconds <= 0 {
		return fmt.Errorf("CLIPPER_TARGET_SECONDS must be positive, got %v", c.TargetSeconds)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
