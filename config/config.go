package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBName     string
	DBUser     string
	DBPassword string
	DBHost     string
	JWTSecret  string
}

// LoadConfig reads the environment (after a best-effort .env load) into
// a Config. Every value is required; nothing ships with a default.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in deployed environments where the
	// variables come from the process environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:       os.Getenv("PORT"),
		DBName:     os.Getenv("DB_NAME"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	for name, value := range map[string]string{
		"PORT":        cfg.Port,
		"DB_NAME":     cfg.DBName,
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_HOST":     cfg.DBHost,
		"JWT_SECRET":  cfg.JWTSecret,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}
