package app

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/menu"
	"github.com/gtools-app/gtools/internal/models"
	"github.com/gtools-app/gtools/internal/statusitem"
)

type fakeEntry struct {
	b      *fakeBackend
	title  string
	hidden bool
	clicks chan struct{}
}

func (e *fakeEntry) SetTitle(title string) {
	e.b.mu.Lock()
	defer e.b.mu.Unlock()
	e.title = title
}
func (e *fakeEntry) SetTooltip(string) {}
func (e *fakeEntry) Enable()           {}
func (e *fakeEntry) Disable()          {}
func (e *fakeEntry) Check()            {}
func (e *fakeEntry) Uncheck()          {}
func (e *fakeEntry) Show() {
	e.b.mu.Lock()
	defer e.b.mu.Unlock()
	e.hidden = false
}
func (e *fakeEntry) Hide() {
	e.b.mu.Lock()
	defer e.b.mu.Unlock()
	e.hidden = true
}
func (e *fakeEntry) Clicked() <-chan struct{} { return e.clicks }

type fakeBackend struct {
	mu       sync.Mutex
	icons    int
	entries  []*fakeEntry
	quit     chan struct{}
	quitOnce sync.Once
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{quit: make(chan struct{})}
}

func (b *fakeBackend) Run(onReady, onExit func()) {
	onReady()
	<-b.quit
	onExit()
}
func (b *fakeBackend) Quit() { b.quitOnce.Do(func() { close(b.quit) }) }
func (b *fakeBackend) SetIcon([]byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.icons++
}
func (b *fakeBackend) SetTitle(string)   {}
func (b *fakeBackend) SetTooltip(string) {}
func (b *fakeBackend) AddMenuItem(title, tooltip string) statusitem.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := &fakeEntry{b: b, title: title, clicks: make(chan struct{})}
	b.entries = append(b.entries, e)
	return e
}

func (b *fakeBackend) visible() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var titles []string
	for _, e := range b.entries {
		if !e.hidden {
			titles = append(titles, e.title)
		}
	}
	return titles
}

type recordingOpener struct {
	mu     sync.Mutex
	opened []string
}

func (o *recordingOpener) Open(target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened = append(o.opened, target)
	return nil
}

func (o *recordingOpener) targets() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.opened...)
}

type harness struct {
	app     *App
	backend *fakeBackend
	opener  *recordingOpener
	store   *menu.DataManager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := zap.NewNop().Sugar()
	settings := models.NewSettings()
	store := menu.NewDataManager(filepath.Join(t.TempDir(), "menu_items.yaml"), log)
	backend := newFakeBackend()
	opener := &recordingOpener{}

	return &harness{
		app:     New(settings, store, Deps{Backend: backend, Opener: opener, Log: log}),
		backend: backend,
		opener:  opener,
		store:   store,
	}
}

// start runs the app in the background and waits until the status item is up.
func (h *harness) start(t *testing.T) {
	t.Helper()
	started := make(chan struct{})
	exited := make(chan struct{})
	go h.app.Run(func() { close(started) }, func() { close(exited) })

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not start")
	}

	t.Cleanup(func() {
		h.app.Quit()
		select {
		case <-exited:
		case <-time.After(2 * time.Second):
			t.Error("app did not exit")
		}
	})
}

func TestRunSeedsDefaultMenu(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	assert.True(t, h.store.Exists())
	assert.Equal(t, models.DefaultMenuItems(), h.app.Items())
	assert.Len(t, h.backend.visible(), len(models.DefaultMenuItems()))
	assert.Equal(t, 1, h.backend.icons)
}

func TestRunRendersExistingMenu(t *testing.T) {
	h := newHarness(t)
	items := []models.MenuItem{{Title: "Open"}, {Title: "Quit", Action: models.ActionQuit}}
	require.NoError(t, h.store.SaveMenuItems(items))

	h.start(t)

	assert.Equal(t, items, h.app.Items())
	assert.Equal(t, []string{"Open", "Quit"}, h.backend.visible())
}

func TestMenuFileChangeTriggersReload(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SaveMenuItems([]models.MenuItem{{Title: "Before"}}))
	h.start(t)

	require.NoError(t, h.store.SaveMenuItems([]models.MenuItem{{Title: "After"}, {Title: "Second"}}))

	assert.Eventually(t, func() bool {
		titles := h.backend.visible()
		return len(titles) == 2 && titles[0] == "After" && titles[1] == "Second"
	}, 3*time.Second, 20*time.Millisecond)
}

func TestEmptyMenuClearsEntries(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SaveMenuItems([]models.MenuItem{{Title: "A"}, {Title: "B"}}))
	h.start(t)

	require.NoError(t, h.store.SaveMenuItems(nil))
	h.app.Reload()

	assert.Empty(t, h.backend.visible())
	assert.Empty(t, h.app.Items())
}

func TestHandleClickActions(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.app.HandleClick(models.MenuItem{Title: "Go", Action: models.ActionOpenURL, URL: "https://go.dev"})
	h.app.HandleClick(models.MenuItem{Title: "Edit", Action: models.ActionEditConfig})
	h.app.HandleClick(models.MenuItem{Title: "Open", Action: models.ActionShowWindow})
	h.app.HandleClick(models.MenuItem{Title: "Open", Action: models.ActionShowWindow})
	h.app.HandleClick(models.MenuItem{Title: "Label"})

	targets := h.opener.targets()
	require.Len(t, targets, 4)
	assert.Equal(t, "https://go.dev", targets[0])
	assert.Equal(t, h.store.Path(), targets[1])
	assert.Equal(t, h.app.Window.URL(), targets[2])
	assert.Equal(t, targets[2], targets[3])
}

func TestConcurrentReloadsSettleOnLatestFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SaveMenuItems([]models.MenuItem{{Title: "Start"}}))
	h.start(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.app.Reload()
		}()
	}
	require.NoError(t, h.store.SaveMenuItems([]models.MenuItem{{Title: "Final"}, {Title: "Quit", Action: models.ActionQuit}}))
	wg.Wait()

	// A reload that starts after the save must win over any earlier one.
	h.app.Reload()
	assert.Equal(t, []string{"Final", "Quit"}, h.backend.visible())
	items := h.app.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Final", items[0].Title)
}

func TestHandleClickReload(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SaveMenuItems([]models.MenuItem{{Title: "One"}}))
	h.start(t)

	// Written behind the app's back without waiting for the watcher.
	data := "version: 1\nitems:\n  - title: Two\n"
	require.NoError(t, os.WriteFile(h.store.Path(), []byte(data), 0644))
	h.app.HandleClick(models.MenuItem{Title: "Reload", Action: models.ActionReload})

	assert.Equal(t, []models.MenuItem{{Title: "Two"}}, h.app.Items())
}

func TestQuitClickStopsApp(t *testing.T) {
	h := newHarness(t)
	exited := make(chan struct{})
	started := make(chan struct{})
	go h.app.Run(func() { close(started) }, func() { close(exited) })
	<-started

	require.NoError(t, h.app.Window.ShowWindow())
	h.app.HandleClick(models.MenuItem{Title: "Quit", Action: models.ActionQuit})

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("quit did not stop the app")
	}
	assert.Empty(t, h.app.Window.URL(), "home page server is shut down on exit")
}
