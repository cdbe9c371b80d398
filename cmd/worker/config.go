package main

import (
	"log"
	"os"
)

// Config holds all configuration for the worker
type Config struct {
	Environment   string
	RedisAddr     string
	RedisPassword string
	SMTPHost      string
	SMTPPort      string
	SMTPFrom      string
	AdminEmail    string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		Environment:   getEnv("APP_ENV", "development"),
		RedisAddr:     getEnv("REDIS_HOST", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "1025"),
		SMTPFrom:      getEnv("SMTP_FROM", "noreply@authorsite.dev"),
		AdminEmail:    getEnv("SITE_ADMIN_EMAIL", ""),
	}

	log.Printf("[Config] Redis: %s, SMTP: %s:%s",
		cfg.RedisAddr, cfg.SMTPHost, cfg.SMTPPort)
	if cfg.AdminEmail == "" {
		log.Println("[Config] ⚠️ SITE_ADMIN_EMAIL not set - notifications will be dropped")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
