// Package envx reads configuration from environment variables, optionally
// seeded from a dotenv file.
package envx

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotenv loads path into the environment without overriding variables
// that are already set. With an empty path it loads ./.env if present.
func LoadDotenv(path string) error {
	if path == "" {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// String returns the value of key, or fallback when unset or empty.
func String(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Bool parses key with strconv.ParseBool. Unset or unparsable values yield
// fallback; ok reports whether the variable supplied the value.
func Bool(key string, fallback bool) (value bool, ok bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, false
	}
	return b, true
}

// Duration parses key with time.ParseDuration, falling back on error.
func Duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
