package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from the environment, loading .env on first use.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigDefault reads a key and falls back to def when it is unset or empty.
func ConfigDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
