package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Config holds runtime settings read from the environment (optionally
// populated from .env by godotenv/autoload in main).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - GIN_MODE (default: release)
//   - LOG_LEVEL (default: info)
type Config struct {
	Port     int
	GinMode  string
	LogLevel string
}

const (
	defaultPort     = 8080
	defaultLogLevel = "info"
)

func Load() Config {
	return Config{
		Port:     getenvInt("PORT", defaultPort),
		GinMode:  normalizeGinMode(getenvDefault("GIN_MODE", gin.ReleaseMode)),
		LogLevel: strings.ToLower(getenvDefault("LOG_LEVEL", defaultLogLevel)),
	}
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func normalizeGinMode(mode string) string {
	switch strings.ToLower(mode) {
	case gin.DebugMode:
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, strconv.Itoa(def)))
	if err != nil || v <= 0 || v > 65535 {
		return def
	}
	return v
}
