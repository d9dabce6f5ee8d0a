package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/cli"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/config"
	"github.com/dmitrijs2005/cybercafe/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	app := cli.NewApp(cfg, logging.NewZerologLogger(zl))
	app.Run(context.Background())

}
