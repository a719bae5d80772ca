package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string

	LLMProvider           string
	LLMModel              string
	OpenAIAPIKey          string
	GeminiProject         string
	GeminiLocation        string
	GeminiCredentialsFile string

	RenderEngine string
	ChromePath   string

	MaxUploadBytes    int64
	ExtractRatePerMin float64
	ExtractBurst      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	provider := normalizeProvider(getEnv("LLM_PROVIDER", "gemini"))
	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		LLMProvider:           provider,
		LLMModel:              getEnv("LLM_MODEL", defaultModel(provider)),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		GeminiProject:         getEnv("GEMINI_PROJECT", ""),
		GeminiLocation:        getEnv("GEMINI_LOCATION", "us-central1"),
		GeminiCredentialsFile: getEnv("GEMINI_CREDENTIALS_FILE", ""),

		RenderEngine: normalizeEngine(getEnv("RENDER_ENGINE", "native")),
		ChromePath:   getEnv("CHROME_PATH", ""),

		MaxUploadBytes:    getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		ExtractRatePerMin: getEnvFloat("EXTRACT_RATE_PER_MIN", 10),
		ExtractBurst:      int(getEnvInt64("EXTRACT_BURST", 3)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "none", "off", "disabled":
		return "none"
	default:
		return "gemini"
	}
}

func normalizeEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "chrome", "chromium", "html":
		return "chrome"
	default:
		return "native"
	}
}

func defaultModel(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o-mini"
	case "gemini":
		return "gemini-2.5-flash"
	default:
		return ""
	}
}
