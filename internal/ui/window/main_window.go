// Package window holds the editor window state and assembles its widget tree.
package window

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/service"
	"github.com/bnema/tlpui/internal/logging"
	"github.com/bnema/tlpui/internal/ui/component"
	"github.com/bnema/tlpui/internal/ui/layout"
)

const (
	windowTitle = "TLP UI"
	statusTitle = "Status"
)

// Shortcut is a keyboard action the window reacts to.
type Shortcut int

const (
	ShortcutNone Shortcut = iota
	ShortcutQuit
	ShortcutClose
	ShortcutSave
	ShortcutReload
	ShortcutOpen
)

// Deps are the collaborators of a MainWindow. Stat and Watcher are optional.
type Deps struct {
	Factory layout.WidgetFactory
	Host    layout.WindowHost
	Load    *usecase.LoadConfigUseCase
	Save    *usecase.SaveConfigUseCase
	Stat    *usecase.GetStatUseCase
	Watcher port.FileWatcher

	// RunOnMain schedules fn on the UI thread. Background work (tlp-stat) hands
	// its result back through it.
	RunOnMain func(fn func())

	// Path is the file shown first.
	Path             string
	ShowDescriptions bool
}

// MainWindow owns the loaded registry and rebuilds the widget tree from it.
// All methods must run on the UI thread.
type MainWindow struct {
	ctx    context.Context
	deps   Deps
	views  *usecase.BuildCategoryViewsUseCase
	logger zerolog.Logger

	// path is the file being edited; Open changes it.
	path     string
	watching bool
	// rejected names the row whose last input was refused.
	rejected string

	registry   *entity.Registry
	categories []entity.CategoryDescriptor
	warnings   []entity.Warning
	writable   bool
	loadErr    error

	notebook   layout.NotebookWidget
	actionBar  *component.ActionBar
	statView   *component.StatView
	pages      []*component.CategoryPage
	lastReport *entity.StatReport
	lastStat   error
	statBusy   bool
	builds     int
}

// New creates the window state. Nothing is shown until Load is called.
func New(ctx context.Context, deps Deps) *MainWindow {
	if deps.RunOnMain == nil {
		deps.RunOnMain = func(fn func()) { fn() }
	}
	log := logging.FromContext(ctx)
	return &MainWindow{
		ctx:    ctx,
		deps:   deps,
		path:   deps.Path,
		views:  usecase.NewBuildCategoryViewsUseCase(),
		logger: log.With().Str("component", "main-window").Logger(),
	}
}

// Load reads the config file and shows it. A malformed category document is
// returned as an error matching entity.ErrFileFormat and nothing is shown.
// Other failures are shown in the window and returned.
func (w *MainWindow) Load(ctx context.Context) error {
	out, err := w.deps.Load.Execute(ctx, usecase.LoadConfigInput{Path: w.path})
	if err != nil {
		if errors.Is(err, entity.ErrFileFormat) {
			return err
		}
		w.logger.Error().Err(err).Str("path", w.path).Msg("failed to load config")
		w.loadErr = err
		w.registry = nil
		w.rebuild()
		w.deps.Host.ShowNotice("Cannot read config", describeLoadError(w.path, err), nil)
		return err
	}

	w.loadErr = nil
	w.registry = out.Registry
	w.categories = out.Categories
	w.warnings = out.Warnings
	w.writable = out.Writable
	w.rebuild()
	return nil
}

func describeLoadError(path string, err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("%s does not exist. Is TLP installed?", path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("%s is not readable by the current user.", path)
	default:
		return fmt.Sprintf("%s could not be read: %v", path, err)
	}
}

// Path returns the file being edited.
func (w *MainWindow) Path() string { return w.path }

// Watch reports external changes of the edited file through ExternalChange.
// Open moves the watch along with the file.
func (w *MainWindow) Watch(ctx context.Context) error {
	if w.deps.Watcher == nil {
		return nil
	}
	err := w.deps.Watcher.Watch(ctx, w.path, func() {
		w.deps.RunOnMain(func() { w.ExternalChange(ctx) })
	})
	w.watching = err == nil
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	return nil
}

// ChooseFile asks the host for another config file and opens it.
func (w *MainWindow) ChooseFile(ctx context.Context) {
	if w.blockedByEdits() {
		return
	}
	w.deps.Host.ChooseFile("Open TLP config", w.path, func(path string) {
		w.Open(ctx, path)
	})
}

// Open switches the window to the file at path. Pending edits block the
// switch.
func (w *MainWindow) Open(ctx context.Context, path string) {
	if path == "" || w.blockedByEdits() {
		return
	}
	w.logger.Info().Str("from", w.path).Str("to", path).Msg("opening config file")
	w.path = path
	if w.watching {
		if err := w.Watch(ctx); err != nil {
			w.logger.Warn().Err(err).Msg("cannot watch config file")
		}
	}
	if err := w.Load(ctx); err != nil {
		w.logger.Warn().Err(err).Str("path", path).Msg("open failed")
	}
}

func (w *MainWindow) blockedByEdits() bool {
	if !w.Dirty() {
		return false
	}
	w.actionBar.SetStatus(component.StatusWarning, "Save or discard your edits before opening another file")
	return true
}

// Dirty reports whether any entry has unsaved edits.
func (w *MainWindow) Dirty() bool {
	if w.registry == nil {
		return false
	}
	return len(service.ComputeChanges(w.registry.Entries())) > 0
}

// Registry returns the registry being edited, nil before a successful load.
func (w *MainWindow) Registry() *entity.Registry { return w.registry }

// Save writes the pending edits, reloads the file and swaps in a fresh tree.
func (w *MainWindow) Save(ctx context.Context) {
	if w.registry == nil {
		return
	}

	out, err := w.deps.Save.Execute(ctx, usecase.SaveConfigInput{Path: w.path, Registry: w.registry})
	if err != nil {
		w.logger.Error().Err(err).Msg("save failed")
		msg := err.Error()
		if errors.Is(err, fs.ErrPermission) {
			msg = fmt.Sprintf("%s\n\nWriting %s requires root privileges.", msg, w.path)
		}
		w.actionBar.SetStatus(component.StatusError, "Save failed")
		w.deps.Host.ShowNotice("Save failed", msg, nil)
		return
	}
	if out.NoChanges {
		w.deps.Host.ShowNotice("Nothing to save", out.Summary, nil)
		return
	}
	if w.deps.Watcher != nil {
		w.deps.Watcher.SkipNext()
	}

	w.registry = out.Registry
	w.rebuildViews(ctx)
	w.rebuild()
	w.actionBar.SetStatus(component.StatusInfo, fmt.Sprintf("Saved %d change(s)", len(out.Changes)))
	w.deps.Host.ShowNotice("Saved", out.Summary, nil)
}

// rebuildViews matches the current categories against a new registry.
func (w *MainWindow) rebuildViews(ctx context.Context) {
	built := w.views.Execute(ctx, usecase.BuildCategoryViewsInput{
		Categories: w.categories,
		Registry:   w.registry,
	})
	w.warnings = built.Warnings
}

// Discard drops pending edits.
func (w *MainWindow) Discard() {
	if w.registry == nil {
		return
	}
	w.registry.Reset()
	for _, p := range w.pages {
		for _, it := range p.Items() {
			it.Refresh()
		}
	}
	w.updateDirty()
}

// Reload reads the file again, dropping pending edits.
func (w *MainWindow) Reload(ctx context.Context) {
	if err := w.Load(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("reload failed")
	}
}

// ExternalChange handles a modification of the file by another process.
// Without pending edits the file is reloaded; otherwise the user is told and
// the edits are kept.
func (w *MainWindow) ExternalChange(ctx context.Context) {
	if !w.Dirty() {
		w.logger.Info().Msg("config file changed on disk, reloading")
		w.Reload(ctx)
		return
	}
	w.logger.Warn().Msg("config file changed on disk while edits are pending")
	w.actionBar.SetStatus(component.StatusWarning, "The file changed on disk. Saving only rewrites your edited lines.")
}

// RefreshStat runs tlp-stat in the background and shows the result.
func (w *MainWindow) RefreshStat(ctx context.Context) {
	if w.deps.Stat == nil || w.statBusy {
		return
	}
	w.statBusy = true
	if w.statView != nil {
		w.statView.SetLoading(true)
	}
	go func() {
		out, err := w.deps.Stat.Execute(ctx, usecase.GetStatInput{})
		w.deps.RunOnMain(func() {
			w.statBusy = false
			if err != nil {
				w.logger.Warn().Err(err).Msg("tlp-stat failed")
				w.lastReport, w.lastStat = nil, err
			} else {
				w.lastReport, w.lastStat = out.Report, nil
			}
			w.showStat()
		})
	}()
}

func (w *MainWindow) showStat() {
	if w.statView == nil {
		return
	}
	switch {
	case w.lastStat != nil:
		w.statView.ShowError(w.lastStat)
	case w.lastReport != nil:
		w.statView.ShowReport(w.lastReport)
	}
}

// HandleShortcut runs the action bound to s and reports whether it was handled.
func (w *MainWindow) HandleShortcut(ctx context.Context, s Shortcut) bool {
	switch s {
	case ShortcutQuit, ShortcutClose:
		w.deps.Host.Close()
	case ShortcutSave:
		w.Save(ctx)
	case ShortcutReload:
		w.Reload(ctx)
	case ShortcutOpen:
		w.ChooseFile(ctx)
	default:
		return false
	}
	return true
}

// Builds returns how many widget trees have been swapped in.
func (w *MainWindow) Builds() int { return w.builds }

// rebuild assembles a new tree from the current state and swaps it into the
// host in one call.
func (w *MainWindow) rebuild() {
	f := w.deps.Factory
	ctx := w.ctx

	current := 0
	if w.notebook != nil {
		current = w.notebook.CurrentPage()
	}

	root := f.NewBox(layout.OrientationVertical, 0)
	notebook := f.NewNotebook()
	notebook.SetVexpand(true)
	notebook.SetHexpand(true)

	var pages []*component.CategoryPage
	warnings := append([]entity.Warning(nil), w.warnings...)
	if w.loadErr != nil {
		msg := f.NewLabel(describeLoadError(w.path, w.loadErr))
		msg.SetWrap(true)
		notebook.AppendPage(msg, "Error")
	} else {
		for _, view := range w.currentViews(ctx) {
			page, pw := component.NewCategoryPage(f, view, w.deps.ShowDescriptions, w.itemEdited)
			warnings = append(warnings, pw...)
			notebook.AppendPage(page.Widget(), page.Label())
			pages = append(pages, page)
		}
	}

	statView := component.NewStatView(f, func() { w.RefreshStat(ctx) })
	notebook.AppendPage(statView.Widget(), statusTitle)

	bar := component.NewActionBar(f, component.ActionBarCallbacks{
		OnOpen:    func() { w.ChooseFile(ctx) },
		OnSave:    func() { w.Save(ctx) },
		OnDiscard: w.Discard,
		OnReload:  func() { w.Reload(ctx) },
	})

	root.Append(notebook)
	root.Append(f.NewSeparator(layout.OrientationHorizontal))
	root.Append(bar.Widget())

	w.notebook = notebook
	w.pages = pages
	w.statView = statView
	w.actionBar = bar
	w.rejected = ""
	w.showStat()

	w.deps.Host.SetContent(root)
	w.builds++

	if current > 0 {
		notebook.SetCurrentPage(current)
	}
	w.showWarnings(warnings)
	w.updateDirty()
}

func (w *MainWindow) currentViews(ctx context.Context) []entity.CategoryView {
	return w.views.Execute(ctx, usecase.BuildCategoryViewsInput{
		Categories: w.categories,
		Registry:   w.registry,
	}).Views
}

func (w *MainWindow) showWarnings(warnings []entity.Warning) {
	visible := 0
	var first entity.Warning
	for _, wr := range warnings {
		if !wr.UserVisible() {
			w.logger.Debug().Str("item", wr.ItemID).Str("kind", string(wr.Kind)).Msg(wr.Message)
			continue
		}
		w.logger.Warn().Str("item", wr.ItemID).Str("kind", string(wr.Kind)).Msg(wr.Message)
		if visible == 0 {
			first = wr
		}
		visible++
	}
	switch {
	case w.loadErr != nil:
		w.actionBar.SetStatus(component.StatusError, "Config file could not be read")
	case visible == 1:
		w.actionBar.SetStatus(component.StatusWarning, fmt.Sprintf("Skipped %s: %s", first.ItemID, first.Message))
	case visible > 1:
		w.actionBar.SetStatus(component.StatusWarning, fmt.Sprintf("Skipped %d settings with unusable definitions", visible))
	case !w.writable:
		w.actionBar.SetStatus(component.StatusInfo, "Read-only: run as root to save changes")
	default:
		w.actionBar.SetStatus(component.StatusInfo, fmt.Sprintf("%d settings loaded", w.registry.Len()))
	}
}

// itemEdited shows refused input in the status line until the row gets a
// value that can be stored.
func (w *MainWindow) itemEdited(name string, err error) {
	if err != nil {
		w.logger.Debug().Err(err).Str("name", name).Msg("edit rejected")
		w.rejected = name
		w.actionBar.SetStatus(component.StatusError, err.Error())
		return
	}
	if w.rejected == name {
		w.rejected = ""
		w.actionBar.SetStatus(component.StatusInfo, "")
	}
	w.updateDirty()
}

func (w *MainWindow) updateDirty() {
	dirty := w.Dirty()
	if w.actionBar != nil {
		w.actionBar.SetDirty(dirty)
	}
	title := fmt.Sprintf("%s - %s", windowTitle, w.path)
	if dirty {
		title = "*" + title
	}
	if !w.writable {
		title += " (read-only)"
	}
	w.deps.Host.SetTitle(title)
}
