// Package config holds runtime settings for the café CLI. Values are
// resolved as defaults, then a .env overlay, then command-line flags, with
// later sources taking precedence.
package config

import "golang.org/x/crypto/bcrypt"

// Config holds runtime settings for the café CLI.
//
// Fields:
//   - PrintRateCents / ScanRateCents: per-page billing rates.
//   - AdminEmails: the allow-list gating the admin menu.
//   - BcryptCost: work factor for password hashing.
//   - LogLevel: zerolog level name ("debug", "info", ...).
type Config struct {
	PrintRateCents int64
	ScanRateCents  int64
	AdminEmails    []string
	BcryptCost     int
	LogLevel       string
}

// LoadDefaults populates c with the standard café settings.
func (c *Config) LoadDefaults() {
	c.PrintRateCents = 20
	c.ScanRateCents = 15
	c.AdminEmails = []string{"admin1@skylinecyber.com", "admin2@skylinecyber.com"}
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a local .env file) and command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
