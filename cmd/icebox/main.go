package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/icebox-archive/icebox/internal/adapter"
	"github.com/icebox-archive/icebox/internal/cli"
	"github.com/icebox-archive/icebox/internal/config"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/internal/service"
	"github.com/icebox-archive/icebox/internal/store"
	"github.com/icebox-archive/icebox/internal/transfer"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig()
	if err != nil {
		cli.Report(os.Stderr, err)
		return cli.ExitFailure
	}

	log := logger.NewCLILogger("icebox", cfg.App.Verbose)
	log.Debug().
		Str("build_version", orNA(buildVersion)).
		Str("build_date", orNA(buildDate)).
		Str("build_commit", orNA(buildCommit)).
		Msg("starting")

	// SIGINT/SIGTERM cancel the context; every blocking operation below
	// carries it, so an interrupt aborts cleanly with the dedicated code.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		cli.Report(os.Stderr, err)
		return cli.ExitFailure
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		cli.Report(os.Stderr, err)
		return cli.ExitFailure
	}

	remote, err := adapter.NewHTTPVaultService(cfg.Remote, cfg.App.AccountKey, log)
	if err != nil {
		cli.Report(os.Stderr, err)
		return cli.ExitFailure
	}

	cache := store.NewCache(db, cfg.App.AccountKey, log)
	jobs := service.NewCoordinator(remote, cfg.Jobs, log)
	sync := service.NewSyncService(cache, remote, jobs, log)
	archives := service.NewArchiveService(cache, remote, transfer.NewEngine(remote, log),
		jobs, sync, cfg.Transfer, log)

	app := cli.NewApp(service.NewVaultAdmin(remote, log), archives, sync, log)
	if err = app.Run(ctx, args); err != nil {
		cli.Report(os.Stderr, err)
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}

func openDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	if cfg.Driver == "postgres" {
		return store.NewConnectPostgres(ctx, cfg, log)
	}
	return store.NewConnectSQLite(ctx, cfg, log)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
