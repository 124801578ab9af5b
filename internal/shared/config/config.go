package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	GeminiAPIKey string
	Model        string
	Timeout      time.Duration
	LogDir       string
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is loaded first, best-effort, for dev convenience.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:        getEnv("GEMINI_MODEL", ""),
		Timeout:      timeoutFromEnv("GEMINI_TIMEOUT_SECONDS"),
		LogDir:       getEnv("LOG_DIR", "logs"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// timeoutFromEnv returns zero when unset, leaving the HTTP client default.
func timeoutFromEnv(key string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0
	}
	return time.Duration(parsed) * time.Second
}
