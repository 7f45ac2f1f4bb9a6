package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/infrastructure/config"
	"github.com/bnema/tlpui/internal/infrastructure/gtkwidget"
	"github.com/bnema/tlpui/internal/logging"
	"github.com/bnema/tlpui/internal/ui/theme"
	"github.com/bnema/tlpui/internal/ui/window"
)

// AppID is the application identifier for GTK.
const AppID = "io.github.bnema.tlpui"

// Exit codes returned by Run besides the GTK ones.
const (
	ExitFormatError = 2
)

// App wraps the GTK Application and manages the editor lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	host       *gtkwidget.Host
	mainWindow *window.MainWindow

	// systemDark is read once, before the app forces its own preference.
	systemDark func() bool

	exitCode int
	cancel   context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps, systemDark: sync.OnceValue(gtkwidget.SystemPrefersDark)}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	ctx, a.cancel = context.WithCancelCause(ctx)
	defer a.cancel(nil)

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Str("path", a.deps.Path).Msg("starting GTK main loop")
	code := a.gtkApp.Run(args)
	if a.exitCode != 0 {
		return a.exitCode
	}
	return code
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	// A second launch re-activates the running instance.
	if a.host != nil {
		a.host.Present()
		return
	}
	log.Debug().Msg("GTK application activated")

	cfg := a.deps.Config
	a.applyTheme(ctx, cfg.UI.ColorScheme)

	a.host = gtkwidget.NewHost(a.gtkApp, cfg.UI.WindowWidth, cfg.UI.WindowHeight)
	a.mainWindow = window.New(ctx, window.Deps{
		Factory:          gtkwidget.NewFactory(),
		Host:             a.host,
		Load:             a.deps.LoadUC,
		Save:             a.deps.SaveUC,
		Stat:             a.deps.StatUC,
		Watcher:          a.deps.Watcher,
		RunOnMain:        gtkwidget.RunOnMain,
		Path:             a.deps.Path,
		ShowDescriptions: cfg.UI.ShowDescriptions,
	})

	if err := a.mainWindow.Load(ctx); err != nil && errors.Is(err, entity.ErrFileFormat) {
		log.Error().Err(err).Msg("category document is malformed")
		a.exitCode = ExitFormatError
		a.gtkApp.Quit()
		return
	}

	a.host.BindShortcuts(func(s window.Shortcut) bool {
		return a.mainWindow.HandleShortcut(ctx, s)
	})
	a.host.OnCloseRequest(func() {
		a.saveWindowSize(ctx)
	})

	a.startWatcher(ctx)
	a.watchAppConfig(ctx)
	a.host.Present()
	a.mainWindow.RefreshStat(ctx)
}

func (a *App) applyTheme(ctx context.Context, scheme string) {
	log := logging.FromContext(ctx)

	prefersDark := theme.ResolveColorScheme(scheme, a.systemDark)
	if !gtkwidget.ApplyStyle(theme.GenerateCSS(theme.ForScheme(prefersDark)), prefersDark) {
		log.Warn().Msg("cannot apply theme: no display")
		return
	}
	log.Debug().Str("scheme", scheme).Bool("prefers_dark", prefersDark).Msg("theme applied")
}

// startWatcher forwards external edits of the TLP file to the main loop.
func (a *App) startWatcher(ctx context.Context) {
	if !a.deps.Config.TLP.WatchConfigFile {
		return
	}
	if err := a.mainWindow.Watch(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("cannot watch config file")
	}
}

// watchAppConfig re-applies the color scheme when the app config file changes.
func (a *App) watchAppConfig(ctx context.Context) {
	mgr := a.deps.ConfigManager
	if mgr == nil {
		return
	}
	scheme := a.deps.Config.UI.ColorScheme
	mgr.OnConfigChange(func(cfg *config.Config) {
		gtkwidget.RunOnMain(func() {
			if cfg.UI.ColorScheme == scheme {
				return
			}
			scheme = cfg.UI.ColorScheme
			a.applyTheme(ctx, scheme)
		})
	})
	if err := mgr.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("cannot watch app config")
	}
}

func (a *App) saveWindowSize(ctx context.Context) {
	if a.deps.ConfigManager == nil || a.host == nil {
		return
	}
	width, height := a.host.Size()
	cfg := *a.deps.ConfigManager.Get()
	if width == cfg.UI.WindowWidth && height == cfg.UI.WindowHeight {
		return
	}
	if width < 320 || height < 240 {
		return
	}
	cfg.UI.WindowWidth = width
	cfg.UI.WindowHeight = height
	if err := a.deps.ConfigManager.Save(&cfg); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to save window size")
	}
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.cancel != nil {
		a.cancel(errors.New("application shutdown"))
	}
	if a.deps.Watcher != nil {
		if err := a.deps.Watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close file watcher")
		}
	}
}
