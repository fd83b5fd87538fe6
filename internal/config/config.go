package config

import (
	"os"
	"strconv"
	"strings"

	"clipforge/internal/logger"
	"clipforge/internal/timescale"
)

// Config holds the server's environment-driven settings.
type Config struct {
	Port            string
	PixelsPerSecond timescale.Scale
	CORSOrigins     []string
}

// Load reads the environment (main loads .env beforehand) into a Config.
func Load(log *logger.Logger) Config {
	pps := GetEnvAsInt("PIXELS_PER_SECOND", int(timescale.DefaultPixelsPerSecond), log)
	origins := GetEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000", log)
	return Config{
		Port:            GetEnv("PORT", "8000", log),
		PixelsPerSecond: timescale.Scale(pps),
		CORSOrigins:     strings.Split(origins, ","),
	}
}

// GetEnv returns the env var or a default.
func GetEnv(key, defaultVal string, log *logger.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		log.Debug("env var not set, using default", "env_var", key, "default", defaultVal)
		return defaultVal
	}
	return val
}

// GetEnvAsInt returns the env var parsed as int, or a default when unset
// or unparseable.
func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		log.Debug("env var not set, using default", "env_var", key, "default", defaultVal)
		return defaultVal
	}
	i, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warn("env var is not an int, using default", "env_var", key, "value", valStr, "default", defaultVal)
		return defaultVal
	}
	return i
}
