// Package cli wires the tlpui dependencies for the commands.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/cli/styles"
	"github.com/bnema/tlpui/internal/domain/build"
	"github.com/bnema/tlpui/internal/domain/repository"
	"github.com/bnema/tlpui/internal/infrastructure/categories"
	"github.com/bnema/tlpui/internal/infrastructure/config"
	"github.com/bnema/tlpui/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tlpui/internal/infrastructure/tlpconf"
	"github.com/bnema/tlpui/internal/infrastructure/tlpstat"
	"github.com/bnema/tlpui/internal/logging"
)

// Options tune how the App is built.
type Options struct {
	// ConfigFile overrides the TLP config path from the app config.
	ConfigFile string
	// LogToStderr prints logs on stderr; the window mode enables it.
	LogToStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Path is the TLP config file commands operate on.
	Path string

	Store      *tlpconf.Store
	Categories *categories.Loader
	History    repository.ChangeHistoryRepository

	// Use cases
	LoadUC    *usecase.LoadConfigUseCase
	SaveUC    *usecase.SaveConfigUseCase
	ApplyUC   *usecase.ApplyEditsUseCase
	StatUC    *usecase.GetStatUseCase
	HistoryUC *usecase.ListHistoryUseCase
	MigrateUC *usecase.MigrateConfigUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg := loadConfig()

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: cfg.Logging.EnableFileLog, Dir: cfg.Logging.LogDir, WriteToStderr: opts.LogToStderr},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	path := cfg.TLP.ConfigFile
	if opts.ConfigFile != "" {
		path = opts.ConfigFile
	}
	ctx = logging.WithConfigPath(ctx, path)

	theme := styles.NewPlainTheme()
	if styles.IsInteractive(os.Stdout) {
		theme = styles.NewTheme()
	}

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         theme,
		Path:          path,
		Store:         tlpconf.NewStore(),
		Categories:    categories.NewLoader(cfg.TLP.CategoriesFile),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	if cfg.History.Enabled && cfg.History.Path != "" {
		app.db = sqlite.NewLazyDB(cfg.History.Path)
		app.History = sqlite.NewLazyChangeHistoryRepository(app.db)
		logger.Debug().Str("db_path", cfg.History.Path).Msg("history enabled")
	}

	stat := tlpstat.NewProvider(
		cfg.TLP.StatCommand,
		cfg.TLP.StatArgs,
		time.Duration(cfg.TLP.StatTimeoutSeconds)*time.Second,
	)

	app.LoadUC = usecase.NewLoadConfigUseCase(app.Store, app.Categories)
	app.SaveUC = usecase.NewSaveConfigUseCase(app.Store, app.History)
	app.ApplyUC = usecase.NewApplyEditsUseCase()
	app.StatUC = usecase.NewGetStatUseCase(stat)
	app.MigrateUC = usecase.NewMigrateConfigUseCase(config.NewMigrator())
	if app.History != nil {
		app.HistoryUC = usecase.NewListHistoryUseCase(app.History)
	}

	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The manager is nil
// when loading failed and defaults are used.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		logger := logging.NewFromEnv()
		logger.Warn().Err(err).Msg("using default configuration")
		return nil, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}
