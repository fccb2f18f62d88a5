package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *EnvConfig

type EnvConfig struct {
	// server config
	APP_PORT            string
	APP_DEBUG           bool
	DEFAULT_API_VERSION string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// seed data config
	SEED_ENABLED bool
	SEED_FILE    string
	// report config
	REPORT_CONFIG_PATH string
}

// LoadEnvConfig reads .env (if present) and the process environment into DefaultEnvConfig.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &EnvConfig{
		APP_PORT:            getEnvString("APP_PORT", "8080"),
		APP_DEBUG:           getEnvBool("APP_DEBUG", false),
		DEFAULT_API_VERSION: strings.ToLower(getEnvString("DEFAULT_API_VERSION", "v2")),
		LOG_FILE_PATH:       getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:           getEnvString("LOG_LEVEL", "info"),
		SEED_ENABLED:        getEnvBool("SEED_ENABLED", true),
		SEED_FILE:           getEnvString("SEED_FILE", ""),
		REPORT_CONFIG_PATH:  getEnvString("REPORT_CONFIG_PATH", ""),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
