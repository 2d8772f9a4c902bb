// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/cli/styles"
	"github.com/bnema/tintbar/internal/domain/repository"
	"github.com/bnema/tintbar/internal/infrastructure/colorgen"
	"github.com/bnema/tintbar/internal/infrastructure/colorscheme"
	"github.com/bnema/tintbar/internal/infrastructure/config"
	"github.com/bnema/tintbar/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tintbar/internal/infrastructure/policy"
	"github.com/bnema/tintbar/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	Store     port.ColorPolicyStore
	Repo      repository.ProjectColorRepository
	Generator port.ColorGenerator
	Scheme    port.ColorSchemeResolver

	db  *sql.DB
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("initialize config: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("TINTBAR_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	dbFile := cfg.Database.Path
	if dbFile == "" {
		if dbFile, err = config.DefaultDatabasePath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	repo := sqlite.NewProjectColorRepository(db)

	scheme := colorscheme.NewResolver(colorscheme.NewConfigAdapter(mgr))
	scheme.RegisterDetector(colorscheme.NewGsettingsDetector())
	scheme.RegisterDetector(colorscheme.NewEnvDetector())

	return &App{
		Config:    mgr,
		Theme:     styles.NewTheme(),
		Store:     policy.NewStore(repo, mgr),
		Repo:      repo,
		Generator: colorgen.New(),
		Scheme:    scheme,
		db:        db,
		ctx:       ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
