package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings of the server.
type Config struct {
	ServerPort string
	AWSRegion  string
	JWTSecret  string
	S3Bucket   string

	OpenRouterAPIKey string
	OpenRouterModel  string
	SiteName         string
	SiteURL          string
}

// Load reads .env if present and builds the Config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		ServerPort:       getEnv("PORT", "8080"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		S3Bucket:         getEnv("S3_BUCKET_NAME", ""),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", "nousresearch/deephermes-3-mistral-24b-preview:free"),
		SiteName:         getEnv("SITE_NAME", "Simplexify Learning Platform"),
		SiteURL:          getEnv("SITE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
