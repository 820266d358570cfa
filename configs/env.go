package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"portfolio.site/configs/configslog"
)

// LoadEnv reads a .env file if one exists. A missing file is not an error;
// production environments set real environment variables instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env file not found, using process environment")
	}
}

// GetEnv returns the value of key, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of key, or fallback when unset or invalid.
func GetEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
