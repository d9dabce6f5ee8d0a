package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/billing"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/config"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/repositories/users"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/services"
	"github.com/dmitrijs2005/cybercafe/internal/logging"
	"github.com/dmitrijs2005/cybercafe/internal/money"
)

// App wires the registry, the admin gate, and the interactive input
// helpers together. One App drives one terminal.
type App struct {
	config   *config.Config
	registry *services.Registry
	gate     *services.Gate
	reader   *bufio.Reader
	log      logging.Logger
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	repo := users.NewInMemoryRepository()
	policy := billing.Policy{
		PrintRate: money.Cents(cfg.PrintRateCents),
		ScanRate:  money.Cents(cfg.ScanRateCents),
	}
	registry := services.NewRegistry(repo, policy, cfg.BcryptCost, log)
	gate := services.NewGate(cfg.AdminEmails, registry, log)

	return &App{
		config:   cfg,
		registry: registry,
		gate:     gate,
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
	}
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the Skyline Cyber Café (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}
