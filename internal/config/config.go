package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every environment-derived setting. It is loaded once at
// startup and injected from there; nothing reads the environment afterwards.
type Config struct {
	// ParamPrefix is the SSM path prefix holding the OpenAI API key when the
	// service runs on Lambda. Empty outside Lambda.
	ParamPrefix string
	// OpenAIAPIKey is the directly-supplied key used by the local server.
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	GenerateTimeout time.Duration
	MaxMessageLen   int
	AllowedOrigin   string
	Port            string
	LogLevel        string
}

// Load reads environment variables, optionally from a .env file if present.
// Which fields are required depends on the entry point, so Load itself never
// fails; the entry points validate what they need.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ParamPrefix:     os.Getenv("PARAM_PREFIX"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GenerateTimeout: time.Duration(getEnvInt("GENERATE_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxMessageLen:   getEnvInt("MAX_MESSAGE_LENGTH", 2000),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "https://vocabstream.vercel.app"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
