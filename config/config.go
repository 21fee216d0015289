package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort         string
	GeminiModel        string
	MaxExtractAttempts int
	MaxFileSize        int64
}

func LoadConfig() *Config {
	// Load .env file if present
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MaxExtractAttempts: getEnvInt("MAX_EXTRACT_ATTEMPTS", 3),
		MaxFileSize:        int64(getEnvInt("MAX_FILE_SIZE", 10*1024*1024)),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
