package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"comunidade/internal/pkg"
)

type Config struct {
	Port            string
	DSN             string
	ConnectionLimit int
	JWTSecret       []byte
	SMTP            pkg.SMTPConfig
}

// Load reads the environment (optionally seeded from a .env file) and fails
// fast on anything the process cannot run without.
func Load(path string) *Config {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Printf("no %s file loaded: %v", path, err)
		}
	}

	cfg := &Config{}
	cfg.Port = getEnv("PORT", "8080")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatalf("JWT_SECRET is required")
	}
	cfg.JWTSecret = []byte(secret)

	cfg.DSN = os.Getenv("DB_DSN")
	if cfg.DSN == "" {
		host := getEnv("DB_HOST", "127.0.0.1")
		port := getEnv("DB_PORT", "3306")
		user := getEnv("DB_USER", "root")
		password := os.Getenv("DB_PASSWORD")
		name := getEnv("DB_NAME", "ipiggconect")
		cfg.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, password, host, port, name)
	}

	cfg.ConnectionLimit = 10
	if v := os.Getenv("DB_CONNECTION_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("DB_CONNECTION_LIMIT must be a positive integer")
		}
		cfg.ConnectionLimit = n
	}

	// SMTP is optional; without it the welcome e-mail is simply skipped.
	if host := os.Getenv("SMTP_HOST"); host != "" {
		smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
		if err != nil {
			log.Fatalf("SMTP_PORT must be an integer")
		}
		cfg.SMTP = pkg.SMTPConfig{
			Host:     host,
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
