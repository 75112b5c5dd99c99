// Package pagination provides offset-based pagination for the article
// listing endpoint: query-parameter parsing, offset calculation, and
// request metrics.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (1-based)
	DefaultLimit int // Default items per page
	MaxLimit     int // Ceiling on items per page for non-empty filtered sets
}

// DefaultConfig returns the default pagination configuration:
// page=1, limit=10, max=50.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     50,
	}
}

// LoadFromEnv loads pagination config from environment variables,
// falling back to DefaultConfig values when unset:
//   - PAGINATION_DEFAULT_PAGE
//   - PAGINATION_DEFAULT_LIMIT
//   - PAGINATION_MAX_LIMIT
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", 10),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 50),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
