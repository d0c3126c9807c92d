package envutil

import (
	"os"
	"strconv"

	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

func GetEnv(key, fallback string, log *logger.Logger) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if log != nil {
		log.Debug("Env var not set, using fallback", "key", key, "fallback", fallback)
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int, log *logger.Logger) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		if log != nil {
			log.Warn("Env var not an integer, using fallback", "key", key, "value", value)
		}
		return fallback
	}
	return parsed
}
