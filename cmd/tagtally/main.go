package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pe51k/tagtally/internal/cli"
	"github.com/pe51k/tagtally/internal/config"
	"github.com/pe51k/tagtally/internal/db"
	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/repository"
	"github.com/pe51k/tagtally/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("TAGTALLY_CONFIG"))
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	recordRepo := repository.NewSQLiteRecordRepo(database, loc)

	var observer service.UseCaseObserver
	if os.Getenv("TAGTALLY_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Reports:            service.NewReportService(recordRepo, loc, observer),
		Seeder:             service.NewSeedService(recordRepo, loc),
		DefaultGranularity: domain.ParseGranularity(cfg.DefaultGranularity),
		MaxTagDepth:        cfg.MaxTagDepth,
		Location:           loc,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

// resolveDBPath picks the database in order of precedence: the TAGTALLY_DB
// env var, the configured path, an auto-discovered Timetagger install, and
// finally a fresh database under ~/.tagtally so seeding works out of the box.
func resolveDBPath(cfg config.Config) (string, error) {
	if p := os.Getenv("TAGTALLY_DB"); p != "" {
		return p, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}

	p, err := db.FindDatabase()
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, db.ErrDatabaseNotFound):
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("finding home directory: %w", herr)
		}
		return filepath.Join(home, ".tagtally", "tagtally.db"), nil
	default:
		return "", err
	}
}
