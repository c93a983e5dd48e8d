package config

import (
	"fmt"
	"os"
)

// Config holds everything the process reads from the environment. It is
// built once in main and handed to constructors; nothing mutates it after
// startup.
type Config struct {
	MongoURI  string
	DBName    string
	JWTSecret string
	RedisAddr string
	Port      string
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Load reads configuration from the environment. MONGO_URL and DB_NAME are
// required. JWT_SECRET falls back to a development default that must be
// overridden in production.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:  os.Getenv("MONGO_URL"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Port:      os.Getenv("PORT"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URL must be set")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME must be set")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}

	if cfg.Port == "" {
		cfg.Port = ":8080"
	} else if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}
