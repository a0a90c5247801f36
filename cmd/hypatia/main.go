package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/cli"
	"github.com/hypatia-cli/hypatia/internal/db"
	"github.com/hypatia-cli/hypatia/internal/repository"
	"github.com/hypatia-cli/hypatia/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.hypatia/hypatia.db
	dbPath := os.Getenv("HYPATIA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".hypatia", "hypatia.db")
	}

	exportDir := os.Getenv("HYPATIA_EXPORTS")
	if exportDir == "" {
		exportDir = "."
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	answerRepo := repository.NewSQLiteAnswerRepo(database)
	trackerRepo := repository.NewSQLiteTrackerRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	settingsSvc := service.NewSettingsService(settingsRepo)
	qbank := bank.ForLanguage(settingsSvc.Language(context.Background()))
	if err := qbank.Validate(); err != nil {
		return fmt.Errorf("validating question bank: %w", err)
	}

	app := &cli.App{
		Conversation: service.NewConversationService(qbank, answerRepo, trackerRepo, settingsRepo, uow),
		Transfer:     service.NewTransferService(answerRepo, trackerRepo, settingsRepo, uow, settingsSvc),
		Reports:      service.NewReportService(qbank, answerRepo, uow),
		Settings:     settingsSvc,
		ExportDir:    exportDir,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
