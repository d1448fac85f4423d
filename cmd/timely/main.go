package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/timely/internal/cli"
	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/config"
	"github.com/alexanderramin/timely/internal/db"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/alexanderramin/timely/internal/repository"
	"github.com/alexanderramin/timely/internal/service"
	"github.com/mattn/go-isatty"
)

// store is a line store that can bootstrap itself.
type store interface {
	repository.LineStore
	repository.Ensurer
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	projects, timeLog, closeStores, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := repository.Bootstrap(ctx, projects, timeLog); err != nil {
		return err
	}

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	c := clock.System{}
	projectRepo := repository.NewLineProjectRepo(projects)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, observers...),
		TimeLog:  service.NewTimeLogService(timeLog, projectRepo, c, observers...),
		Reports:  service.NewReportService(timeLog, c, cfg.HistoricDays, observers...),
		Clock:    c,
	}

	// Detect interactive terminal for the menu entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// openStores builds the project and time log stores for the configured
// backend. The returned func releases any resources they hold.
func openStores(cfg config.Config) (projects, timeLog store, closeFn func(), err error) {
	switch cfg.Backend {
	case domain.BackendSQLite:
		path, err := cfg.DatabasePath()
		if err != nil {
			return nil, nil, nil, err
		}
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)
		return repository.NewSQLiteLineStore(database, uow, "projects"),
			repository.NewSQLiteLineStore(database, uow, "time_log"),
			func() { closeDB(database) }, nil
	default:
		projectsPath, err := cfg.ProjectsPath()
		if err != nil {
			return nil, nil, nil, err
		}
		logPath, err := cfg.LogPath()
		if err != nil {
			return nil, nil, nil, err
		}
		return repository.NewFileLineStore(projectsPath),
			repository.NewFileLineStore(logPath),
			func() {}, nil
	}
}

func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: closing database: %v\n", err)
	}
}
