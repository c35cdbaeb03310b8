package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Bearer token validation
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// Bootstrap import
	CSVPath string

	// Rate limiting
	RateLimitRPM   int
	RateLimitBurst int
}

func Load() *Config {
	rateLimitRPM, _ := strconv.Atoi(getEnv("RATE_LIMIT_RPM", "120"))
	rateLimitBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/carcatalog?charset=utf8mb4&parseTime=True&loc=Local"),

		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		JWTIssuer:   getEnv("JWT_ISSUER", "https://auth.carcatalog.example.com"),
		JWTAudience: getEnv("JWT_AUDIENCE", "carcatalog-api"),

		CSVPath: getEnv("CSV_PATH", "data/cars.csv"),

		RateLimitRPM:   rateLimitRPM,
		RateLimitBurst: rateLimitBurst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
