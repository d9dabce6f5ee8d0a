package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a local .env
// file first if one exists. Recognized variables:
//
//	CAFE_PRINT_RATE_CENTS  per-page print rate
//	CAFE_SCAN_RATE_CENTS   per-page scan rate
//	CAFE_ADMIN_EMAILS      comma-separated admin allow-list
//	CAFE_BCRYPT_COST       bcrypt work factor
//	CAFE_LOG_LEVEL         zerolog level name
//
// Unset or malformed values leave the current settings untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CAFE_PRINT_RATE_CENTS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.PrintRateCents = n
		}
	}
	if v := os.Getenv("CAFE_SCAN_RATE_CENTS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.ScanRateCents = n
		}
	}
	if v := os.Getenv("CAFE_ADMIN_EMAILS"); v != "" {
		cfg.AdminEmails = splitEmails(v)
	}
	if v := os.Getenv("CAFE_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v := os.Getenv("CAFE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// splitEmails parses a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitEmails(s string) []string {
	parts := strings.Split(s, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.TrimSpace(p); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}
