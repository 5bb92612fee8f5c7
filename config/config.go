package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DataPath        string
	ListenAddr      string
	DbDsn           string
	DbTable         string
	LogLevel        string
	ShutdownTimeout time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		config = cfg
	})
	return config
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	timeout, err := time.ParseDuration(envStr("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		DataPath:        envStr("DATA_PATH", "cleaned_df.csv"),
		ListenAddr:      envStr("LISTEN_ADDR", "127.0.0.1:8050"),
		DbDsn:           os.Getenv("DB_DSN"),
		DbTable:         envStr("DB_TABLE", "cleaned_df"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		ShutdownTimeout: timeout,
	}, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
