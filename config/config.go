package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded once at startup.
type Config struct {
	Port              string
	MongoURI          string
	MongoDBName       string
	JWTSecret         string
	IdentityAPIURL    string
	IdentitySecretKey string
	FrontendURL       string
	EmailFrom         string
	EmailPassword     string
	SMTPHost          string
	SMTPPort          string
	CORSAllowedOrigin string
}

// Load reads the .env file if present and builds the Config from the
// environment. Missing keys fall back to development defaults.
func Load() *Config {
	// .env is optional; in containers the environment is injected directly.
	_ = godotenv.Load(".env")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:       getEnv("MONGO_DB_NAME", "synctask"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		IdentityAPIURL:    getEnv("IDENTITY_API_URL", "https://api.clerk.com/v1"),
		IdentitySecretKey: getEnv("IDENTITY_SECRET_KEY", ""),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:5174"),
		EmailFrom:         getEnv("EMAIL_FROM", ""),
		EmailPassword:     getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5174"),
	}
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}
