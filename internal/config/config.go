package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	FrontendURL string
	BaseURL     string

	UploadDir string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	SMTPAddr     string
	SMTPEmail    string
	SMTPPassword string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user=postgres dbname=catopia sslmode=prefer host=localhost"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/callback"),

		SMTPAddr:     getEnv("SMTP_ADDR", "smtp.gmail.com:587"),
		SMTPEmail:    os.Getenv("EMAIL"),
		SMTPPassword: os.Getenv("EMAIL_PASS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
