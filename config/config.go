package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env             string
	Port            string
	DBURL           string
	JWTSecret       string
	TokenHashSecret string
	SessionTTLMin   int
	RefreshTTLMin   int
	TOTPSkew        int
	RateLimitWindow int
	RateLimitMax    int
}

func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DBURL:           mustGetEnv("DB_URL"),
		JWTSecret:       mustGetEnv("ADMIN_JWT_SECRET"),
		TokenHashSecret: mustGetEnv("TOKEN_HASH_SECRET"),
		SessionTTLMin:   getEnvAsInt("SESSION_TTL_MINUTES", 60),
		RefreshTTLMin:   getEnvAsInt("REFRESH_TTL_MINUTES", 10080),
		TOTPSkew:        getEnvAsInt("TOTP_SKEW", 1),
		RateLimitWindow: getEnvAsInt("RATE_LIMIT_WINDOW_MINUTES", 15),
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
