package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultUser is the single implicit user every request acts as.
const DefaultUser = "default_user"

type Settings struct {
	Port string

	Provider      string
	APIKey        string
	BaseURL       string
	Model         string
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	DBDriver    string
	DatabaseDSN string

	AllowedOrigins []string
}

// Load reads a .env file when present and then the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Logger.WithError(err).Warn("Failed to load .env file")
	}

	provider := strings.ToLower(getEnv("COMPLETION_PROVIDER", "perplexity"))
	baseURL := "https://api.perplexity.ai"
	if provider == "openai" {
		baseURL = "https://api.openai.com/v1"
	}

	return &Settings{
		Port: getEnv("PORT", "3000"),

		Provider:      provider,
		APIKey:        os.Getenv("PPLX_API_KEY"),
		BaseURL:       getEnv("COMPLETION_BASE_URL", baseURL),
		Model:         getEnv("COMPLETION_MODEL", "sonar"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func (s *Settings) PersistenceEnabled() bool {
	return s.DatabaseDSN != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
