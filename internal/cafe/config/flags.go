package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/cybercafe/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags:
//
//	-print-rate int    per-page print rate in cents
//	-scan-rate int     per-page scan rate in cents
//	-admins string     comma-separated admin allow-list
//	-log-level string  zerolog level name
//
// os.Args is filtered through flagx.Select so flags owned by other
// components (including the test runner) are ignored.
func parseFlags(cfg *Config) {
	args := flagx.Select(os.Args[1:], "-print-rate", "-scan-rate", "-admins", "-log-level")

	fs := flag.NewFlagSet("cafe", flag.ContinueOnError)

	fs.Int64Var(&cfg.PrintRateCents, "print-rate", cfg.PrintRateCents, "per-page print rate in cents")
	fs.Int64Var(&cfg.ScanRateCents, "scan-rate", cfg.ScanRateCents, "per-page scan rate in cents")
	admins := fs.String("admins", "", "comma-separated admin email allow-list")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return
	}

	if *admins != "" {
		cfg.AdminEmails = splitEmails(*admins)
	}
}
