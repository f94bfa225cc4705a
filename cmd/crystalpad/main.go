package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/crystalpad/internal/buildinfo"
	"github.com/dmitrijs2005/crystalpad/internal/client/cli"
	"github.com/dmitrijs2005/crystalpad/internal/client/client"
	"github.com/dmitrijs2005/crystalpad/internal/client/config"
	"github.com/dmitrijs2005/crystalpad/internal/client/i18n"
	"github.com/dmitrijs2005/crystalpad/internal/client/services"
	"github.com/dmitrijs2005/crystalpad/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background(), config.LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repos := client.NewRepositories(db)
	notes := services.NewNoteService(db, logger, services.WithRepository(repos.Notes))
	settings := services.NewSettingsService(repos.Settings, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := settings.Close(closeCtx); err != nil {
			logger.Error(closeCtx, "settings writer did not drain", "error", err)
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tr := i18n.NewTranslator(cfg.SystemLanguage)
	app := cli.NewApp(notes, settings, tr, logger, os.Stdin, os.Stdout)
	return app.Run(runCtx)
}
