package window_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/application/port/mocks"
	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
	"github.com/bnema/tlpui/internal/ui/layout/layouttest"
	"github.com/bnema/tlpui/internal/ui/window"
)

const confPath = "/etc/tlp.conf"

type fixture struct {
	ctx     context.Context
	store   *mocks.MockConfigStore
	cats    *mocks.MockCategorySource
	stat    *mocks.MockStatProvider
	watcher *mocks.MockFileWatcher
	host    *layouttest.Host
	factory *layouttest.Factory
	main    chan func()
	win     *window.MainWindow
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		ctx:     logging.WithContext(context.Background(), zerolog.Nop()),
		store:   mocks.NewMockConfigStore(t),
		cats:    mocks.NewMockCategorySource(t),
		stat:    mocks.NewMockStatProvider(t),
		watcher: mocks.NewMockFileWatcher(t),
		host:    &layouttest.Host{},
		factory: layouttest.NewFactory(),
		main:    make(chan func(), 1),
	}
	fx.win = window.New(fx.ctx, window.Deps{
		Factory:          fx.factory,
		Host:             fx.host,
		Load:             usecase.NewLoadConfigUseCase(fx.store, fx.cats),
		Save:             usecase.NewSaveConfigUseCase(fx.store, nil),
		Stat:             usecase.NewGetStatUseCase(fx.stat),
		Watcher:          fx.watcher,
		RunOnMain:        func(fn func()) { fx.main <- fn },
		Path:             confPath,
		ShowDescriptions: true,
	})
	return fx
}

func entries() []*entity.ConfigEntry {
	return []*entity.ConfigEntry{
		entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 0),
		entity.NewConfigEntry("CPU_BOOST_ON_AC", "1", false, false, 3),
	}
}

func categories() []entity.CategoryDescriptor {
	return []entity.CategoryDescriptor{
		{Label: "General", Items: []entity.ItemDescriptor{
			{ID: "TLP_ENABLE", Type: entity.WidgetBSelect, Values: []string{"0", "1"}, Description: "Enable TLP"},
		}},
		{Label: "Processor", Items: []entity.ItemDescriptor{
			{ID: "CPU_BOOST_ON_AC", Type: entity.WidgetBSelect, Values: []string{"0", "1"}},
			{ID: "CPU_HWP_DYN_BOOST_ON_AC", Type: entity.WidgetBSelect, Values: []string{"0", "1"}},
		}},
	}
}

func (fx *fixture) expectLoad(e []*entity.ConfigEntry) {
	fx.cats.EXPECT().Load(mock.Anything).Return(categories(), nil).Once()
	fx.store.EXPECT().Load(mock.Anything, confPath).Return(e, nil).Once()
	fx.store.EXPECT().Writable(confPath).Return(true).Once()
}

// switchFor returns the enable toggle of the row named name. Rows hold the
// toggle first and the bselect switch second.
func (fx *fixture) switches(name string) (toggle, value *layouttest.Widget) {
	row := fx.host.Content.Find(func(w *layouttest.Widget) bool {
		return w.Kind == "box" && w.Find(func(l *layouttest.Widget) bool {
			return l.Kind == "label" && l.Text() == name
		}) != nil && len(w.FindAll(layouttest.ByKind("switch"))) == 2
	})
	if row == nil {
		return nil, nil
	}
	sws := row.FindAll(layouttest.ByKind("switch"))
	return sws[0], sws[1]
}

func (fx *fixture) statusText() string {
	bar := fx.host.Content.Children[2]
	return bar.Children[0].Text()
}

func TestMainWindow_Load(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())

	require.NoError(t, fx.win.Load(fx.ctx))

	require.NotNil(t, fx.host.Content)
	assert.Equal(t, 1, fx.host.Swaps)
	notebook := fx.host.Content.Find(layouttest.ByKind("notebook"))
	require.NotNil(t, notebook)
	assert.Equal(t, []string{"General", "Processor", "Status"}, notebook.Pages)
	assert.Equal(t, "TLP UI - /etc/tlp.conf", fx.host.Title)
	assert.Equal(t, "2 settings loaded", fx.statusText())
	assert.False(t, fx.win.Dirty())
}

func TestMainWindow_LoadCategoryFailureIsFatal(t *testing.T) {
	fx := newFixture(t)
	fx.cats.EXPECT().Load(mock.Anything).Return(nil, &entity.FileFormatError{Reason: "no categories"}).Once()
	fx.cats.EXPECT().Origin().Return("embedded").Once()

	err := fx.win.Load(fx.ctx)
	assert.ErrorIs(t, err, entity.ErrFileFormat)
	assert.Nil(t, fx.host.Content)
	assert.Empty(t, fx.host.Notices)
}

func TestMainWindow_LoadMissingFile(t *testing.T) {
	fx := newFixture(t)
	fx.cats.EXPECT().Load(mock.Anything).Return(categories(), nil).Once()
	fx.store.EXPECT().Load(mock.Anything, confPath).Return(nil, fs.ErrNotExist).Once()

	err := fx.win.Load(fx.ctx)
	require.Error(t, err)

	require.Len(t, fx.host.Notices, 1)
	assert.Contains(t, fx.host.Notices[0].Message, "/etc/tlp.conf does not exist")
	notebook := fx.host.Content.Find(layouttest.ByKind("notebook"))
	assert.Equal(t, []string{"Error", "Status"}, notebook.Pages)
	assert.Equal(t, "Config file could not be read", fx.statusText())
}

func TestMainWindow_EditAndSave(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	toggle, value := fx.switches("CPU_BOOST_ON_AC")
	require.NotNil(t, toggle)
	toggle.SetActive(true)
	value.SetActive(false)

	assert.True(t, fx.win.Dirty())
	assert.True(t, strings.HasPrefix(fx.host.Title, "*"))

	fx.watcher.EXPECT().SkipNext().Once()
	fx.store.EXPECT().Save(mock.Anything, confPath, mock.MatchedBy(func(c []entity.Change) bool {
		return len(c) == 1 && c[0].Name == "CPU_BOOST_ON_AC" && c[0].NewValue == "0" && c[0].NewActive
	})).Return(nil).Once()
	saved := []*entity.ConfigEntry{
		entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 0),
		entity.NewConfigEntry("CPU_BOOST_ON_AC", "0", true, false, 3),
	}
	fx.store.EXPECT().Load(mock.Anything, confPath).Return(saved, nil).Once()

	fx.win.Save(fx.ctx)

	assert.Equal(t, 2, fx.host.Swaps, "a fresh tree replaces the old one")
	assert.False(t, fx.win.Dirty())
	assert.Equal(t, "Saved", fx.host.LastNotice().Title)
	assert.Equal(t, "Changed values:\nCPU_BOOST_ON_AC -> 0 (enabled)", fx.host.LastNotice().Message)
	assert.Equal(t, "Saved 1 change(s)", fx.statusText())

	e, ok := fx.win.Registry().Get("CPU_BOOST_ON_AC")
	require.True(t, ok)
	assert.Equal(t, "0", e.OriginalValue)
}

func TestMainWindow_SaveWithoutChanges(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	fx.win.Save(fx.ctx)

	assert.Equal(t, "No changes", fx.host.LastNotice().Message)
	assert.Equal(t, 1, fx.host.Swaps)
}

func TestMainWindow_SavePermissionDenied(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	_, value := fx.switches("TLP_ENABLE")
	value.SetActive(false)

	fx.store.EXPECT().Save(mock.Anything, confPath, mock.Anything).Return(fs.ErrPermission).Once()

	fx.win.Save(fx.ctx)

	// Nothing was written, so the next external change must still arrive.
	fx.watcher.AssertNotCalled(t, "SkipNext")
	assert.Equal(t, "Save failed", fx.host.LastNotice().Title)
	assert.Contains(t, fx.host.LastNotice().Message, "requires root privileges")
	assert.True(t, fx.win.Dirty(), "edits survive a failed save")
}

func TestMainWindow_RejectedInputIsNotApplied(t *testing.T) {
	fx := newFixture(t)
	cats := append(categories(), entity.CategoryDescriptor{Label: "Disks", Items: []entity.ItemDescriptor{
		{ID: "DISK_DEVICES", Type: entity.WidgetEntry},
	}})
	fx.cats.EXPECT().Load(mock.Anything).Return(cats, nil).Once()
	fx.store.EXPECT().Load(mock.Anything, confPath).Return(append(entries(),
		entity.NewConfigEntry("DISK_DEVICES", "nvme0n1 sda", true, true, 7),
	), nil).Once()
	fx.store.EXPECT().Writable(confPath).Return(true).Once()
	require.NoError(t, fx.win.Load(fx.ctx))

	text := fx.host.Content.Find(layouttest.ByKind("entry"))
	require.NotNil(t, text)

	text.SetText(`nvme0n1 "sda`)
	assert.False(t, fx.win.Dirty())
	assert.Contains(t, fx.statusText(), "must not contain newlines or quotes")
	assert.Contains(t, fx.host.Content.Children[2].Children[0].Classes, "status-error")

	text.SetText("nvme0n1")
	assert.True(t, fx.win.Dirty())
	assert.Empty(t, fx.statusText())

	e, ok := fx.win.Registry().Get("DISK_DEVICES")
	require.True(t, ok)
	assert.Equal(t, "nvme0n1", e.Value)
}

func TestMainWindow_Open(t *testing.T) {
	const other = "/srv/tlp/test.conf"
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	fx.watcher.EXPECT().Watch(mock.Anything, confPath, mock.Anything).Return(nil).Once()
	require.NoError(t, fx.win.Watch(fx.ctx))

	var onChange func()
	fx.watcher.EXPECT().Watch(mock.Anything, other, mock.Anything).
		Run(func(_ context.Context, _ string, fn func()) { onChange = fn }).
		Return(nil).Once()
	fx.cats.EXPECT().Load(mock.Anything).Return(categories(), nil).Once()
	fx.store.EXPECT().Load(mock.Anything, other).Return(entries()[:1], nil).Once()
	fx.store.EXPECT().Writable(other).Return(false).Once()

	fx.host.Chosen = other
	open := fx.host.Content.Find(layouttest.ByLabel("Open"))
	require.NotNil(t, open)
	open.Click()

	assert.Equal(t, []string{confPath}, fx.host.Choosers)
	assert.Equal(t, other, fx.win.Path())
	assert.Equal(t, 2, fx.host.Swaps)
	assert.Equal(t, "TLP UI - /srv/tlp/test.conf (read-only)", fx.host.Title)
	assert.Equal(t, 1, fx.win.Registry().Len())

	// Changes of the new file reload it.
	require.NotNil(t, onChange)
	fx.cats.EXPECT().Load(mock.Anything).Return(categories(), nil).Once()
	fx.store.EXPECT().Load(mock.Anything, other).Return(entries(), nil).Once()
	fx.store.EXPECT().Writable(other).Return(false).Once()
	onChange()
	(<-fx.main)()
	assert.Equal(t, 3, fx.host.Swaps)
	assert.Equal(t, 2, fx.win.Registry().Len())
}

func TestMainWindow_OpenBlockedByPendingEdits(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	_, value := fx.switches("TLP_ENABLE")
	value.SetActive(false)

	fx.host.Chosen = "/srv/tlp/test.conf"
	assert.True(t, fx.win.HandleShortcut(fx.ctx, window.ShortcutOpen))

	assert.Empty(t, fx.host.Choosers)
	assert.Equal(t, confPath, fx.win.Path())
	assert.Equal(t, 1, fx.host.Swaps)
	assert.Contains(t, fx.statusText(), "Save or discard")
	assert.True(t, fx.win.Dirty())
}

func TestMainWindow_Discard(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	_, value := fx.switches("TLP_ENABLE")
	value.SetActive(false)
	require.True(t, fx.win.Dirty())

	fx.win.Discard()

	assert.False(t, fx.win.Dirty())
	assert.True(t, value.Active())
	assert.Equal(t, "TLP UI - /etc/tlp.conf", fx.host.Title)
}

func TestMainWindow_ExternalChange(t *testing.T) {
	t.Run("reloads when clean", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectLoad(entries())
		require.NoError(t, fx.win.Load(fx.ctx))

		fx.expectLoad(entries())
		fx.win.ExternalChange(fx.ctx)
		assert.Equal(t, 2, fx.host.Swaps)
	})

	t.Run("keeps edits when dirty", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectLoad(entries())
		require.NoError(t, fx.win.Load(fx.ctx))

		_, value := fx.switches("TLP_ENABLE")
		value.SetActive(false)

		fx.win.ExternalChange(fx.ctx)
		assert.Equal(t, 1, fx.host.Swaps)
		assert.True(t, fx.win.Dirty())
		assert.Contains(t, fx.statusText(), "changed on disk")
	})
}

func TestMainWindow_RefreshStat(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	fx.stat.EXPECT().Fetch(mock.Anything).Return(&entity.StatReport{
		Command:  "tlp-stat -s",
		Sections: []entity.StatSection{{Title: "TLP Status", Lines: []string{"State = enabled"}}},
	}, nil).Once()

	fx.win.RefreshStat(fx.ctx)
	fx.win.RefreshStat(fx.ctx) // ignored while running
	(<-fx.main)()

	text := fx.host.Content.Find(layouttest.ByKind("textview"))
	require.NotNil(t, text)
	assert.Contains(t, text.Text(), "State = enabled")
}

func TestMainWindow_RefreshStatError(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	fx.stat.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("tlp-stat unavailable")).Once()

	fx.win.RefreshStat(fx.ctx)
	(<-fx.main)()

	text := fx.host.Content.Find(layouttest.ByKind("textview"))
	assert.Equal(t, "tlp-stat unavailable", text.Text())
}

func TestMainWindow_Shortcuts(t *testing.T) {
	fx := newFixture(t)
	fx.expectLoad(entries())
	require.NoError(t, fx.win.Load(fx.ctx))

	assert.False(t, fx.win.HandleShortcut(fx.ctx, window.ShortcutNone))

	fx.expectLoad(entries())
	assert.True(t, fx.win.HandleShortcut(fx.ctx, window.ShortcutReload))
	assert.Equal(t, 2, fx.host.Swaps)

	assert.True(t, fx.win.HandleShortcut(fx.ctx, window.ShortcutQuit))
	assert.True(t, fx.host.Closed)
}
