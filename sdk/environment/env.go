// Package environment provides support for env vars.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file. A missing file is
// fine for production deployments; callers decide how to treat the error.
func LoadEnv(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	if prefix == "" {
		return GetEnvOrDefault(key, fallback)
	}
	return GetEnvOrDefault(fmt.Sprintf("%s_%s", prefix, key), fallback)
}
