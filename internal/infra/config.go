package infra

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port               string
	PostgresURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins string
	AIProvider         string
	OpenAIAPIKey       string
	OpenAIModel        string
	GeminiAPIKey       string
	GeminiModel        string
	AutoMigrate        bool
	AppEnv             string
}

// AIKey returns the api key and model of the configured provider.
func (c *Config) AIKey() (string, string) {
	switch strings.ToLower(c.AIProvider) {
	case "openai":
		return c.OpenAIAPIKey, c.OpenAIModel
	case "gemini":
		return c.GeminiAPIKey, c.GeminiModel
	}
	return "", ""
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file found, using process environment")
	}

	ttlMinutes, err := strconv.Atoi(getEnvWithDefault("JWT_TTL_MINUTES", "60"))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 60
	}

	autoMigrate, err := strconv.ParseBool(getEnvWithDefault("AUTO_MIGRATE", "true"))
	if err != nil {
		autoMigrate = true
	}

	return &Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             time.Duration(ttlMinutes) * time.Minute,
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		AIProvider:         getEnvWithDefault("AI_PROVIDER", "none"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        os.Getenv("OPENAI_MODEL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		AutoMigrate:        autoMigrate,
		AppEnv:             getEnvWithDefault("APP_ENV", "production"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
