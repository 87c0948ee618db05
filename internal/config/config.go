// internal/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Auth   AuthConfig
	Env    string
}

type ServerConfig struct {
	Port string
}

type UploadConfig struct {
	Dir string
}

type AuthConfig struct {
	// TokenIssuer selects the credential issuer: "demo" (reversible
	// encoding, accepts any well-formed token) or "jwt".
	TokenIssuer string
	JWTSecret   string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Auth: AuthConfig{
			TokenIssuer: getEnv("TOKEN_ISSUER", "demo"),
			JWTSecret:   getEnv("JWT_SECRET", "your-default-secret-key"),
		},
		Env: getEnv("ENVIRONMENT", "development"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
