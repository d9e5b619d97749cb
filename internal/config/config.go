package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUrl         string
	RedisAddr     string
	JWTSecret     string
	AppEnv        string
	LogFile       string
	EnableMetrics bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DB_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		JWTSecret:     jwtSecret,
		AppEnv:        normalizeEnv(getEnv("APP_ENV", "production")),
		LogFile:       getEnv("LOG_FILE", "./logs/mefit.log"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
	}, nil
}

func (c *Config) Development() bool {
	return c != nil && c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
