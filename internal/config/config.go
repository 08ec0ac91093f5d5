package config

import (
	"os"
	"strconv"

	"imagine_hub/internal/domain/entities"
)

// Config holds runtime configuration parsed from environment variables.
//
// The contact block is process-wide and read once at startup; it is
// rendered on every quote document and is never editable per order.
type Config struct {
	HTTPAddr      string
	CORSOrigins   []string
	PrintSpoolDir string
	MaxImageBytes int64
	Contact       entities.Contact
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:      envOrDefault("HTTP_ADDR", ":8080"),
		CORSOrigins:   corsOrigins(),
		PrintSpoolDir: envOrDefault("PRINT_SPOOL_DIR", "spool"),
		MaxImageBytes: envInt64("MAX_IMAGE_BYTES", 8<<20),
		Contact: entities.Contact{
			Phone:     envOrDefault("CONTACT_PHONE", "(83) 99391-3523"),
			Email:     envOrDefault("CONTACT_EMAIL", "imaginehub.oficial@gmail.com"),
			Instagram: envOrDefault("CONTACT_INSTAGRAM", "@imagine.hub_"),
		},
	}
}

func corsOrigins() []string {
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		return []string{v}
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil && n > 0 {
			return n
		}
	}
	return def
}
