package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/gktimer/internal/cli"
	"github.com/alexanderramin/gktimer/internal/config"
	"github.com/alexanderramin/gktimer/internal/db"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
	"github.com/alexanderramin/gktimer/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.ErrorMessage(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	clock := domain.SystemClock{}

	app := &cli.App{
		Timer:    service.NewTimerService(sessionRepo, clock, observers...),
		Reports:  service.NewReportService(sessionRepo, clock, observers...),
		Sessions: service.NewSessionService(sessionRepo),
		Import:   service.NewImportService(uow, observers...),

		Clock:      clock,
		Location:   cfg.Location,
		Clock24h:   cfg.Clock24h,
		LegacyFile: cfg.LegacyFile,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
