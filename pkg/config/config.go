package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	JWT      JWTConfig
	AWS      AWSConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	// URL boşsa uygulama in-memory demo modunda çalışır
	URL string
}

type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash
}

type JWTConfig struct {
	Secret string
}

type AWSConfig struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	NotifyTo     string // yeni lead bildirimlerinin gideceği adres
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@hazelview.local"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "hazelview-dev-secret"),
		},
		AWS: AWSConfig{
			Region:    getEnv("AWS_REGION", "eu-central-1"),
			Bucket:    getEnv("AWS_BUCKET_NAME", "hazelview-images"),
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Hazelview Realty <noreply@hazelview.local>"),
			NotifyTo:     getEnv("LEAD_NOTIFY_TO", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
