// Package app wires the menu store, the status item and the home page window
// into one application context.
package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/menu"
	"github.com/gtools-app/gtools/internal/models"
	"github.com/gtools-app/gtools/internal/statusitem"
	"github.com/gtools-app/gtools/internal/watcher"
	"github.com/gtools-app/gtools/internal/window"
)

const shutdownTimeout = 2 * time.Second

// Deps are the OS integrations the app talks to.
type Deps struct {
	Backend statusitem.Backend
	Opener  window.Opener
	Log     *zap.SugaredLogger
}

// App is constructed once at startup and owns one instance of each manager.
type App struct {
	Settings *models.Settings
	Menu     *menu.DataManager
	Status   *statusitem.Manager
	Window   *window.Controller

	opener  window.Opener
	log     *zap.SugaredLogger
	watcher *watcher.Watcher

	reloadMu sync.Mutex // serializes load, store and render

	mu    sync.RWMutex
	items []models.MenuItem
}

// New builds the application context.
func New(settings *models.Settings, store *menu.DataManager, deps Deps) *App {
	a := &App{
		Settings: settings,
		Menu:     store,
		opener:   deps.Opener,
		log:      deps.Log,
	}

	a.Status = statusitem.NewManager(deps.Backend, statusitem.Options{
		Title:   settings.Tray.Title,
		Tooltip: settings.Tray.Tooltip,
		OnClick: a.HandleClick,
	}, deps.Log.Named("statusitem"))

	a.Window = window.NewController(window.Options{
		Listen:       settings.Window.Listen,
		Title:        settings.Window.Title,
		SearchEngine: settings.Search.Engine,
	}, a.Items, deps.Opener, deps.Log.Named("window"))

	return a
}

// Run shows the status item and blocks the calling goroutine (must be main)
// until Quit. onStart runs once the status item is up; onExit after teardown.
func (a *App) Run(onStart, onExit func()) {
	a.Status.Run(func() {
		a.onReady()
		if onStart != nil {
			onStart()
		}
	}, func() {
		a.shutdown()
		if onExit != nil {
			onExit()
		}
	})
}

// Quit asks the status-bar loop to exit.
func (a *App) Quit() {
	a.Status.Quit()
}

// Items returns the descriptors currently rendered.
func (a *App) Items() []models.MenuItem {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.MenuItem(nil), a.items...)
}

// Reload re-reads the menu file and re-renders the status menu.
func (a *App) Reload() {
	a.reloadMu.Lock()
	defer a.reloadMu.Unlock()

	items := a.Menu.LoadMenuItems()

	a.mu.Lock()
	a.items = items
	a.mu.Unlock()

	a.Status.UpdateMenuItems(items)
	a.log.Infow("menu reloaded", "items", len(items))
}

// SeedDefaults writes the default menu when no menu file exists yet.
func (a *App) SeedDefaults() {
	if a.Menu.Exists() {
		return
	}
	if err := a.Menu.SaveMenuItems(models.DefaultMenuItems()); err != nil {
		a.log.Warnw("failed to write default menu", "path", a.Menu.Path(), "error", err)
		return
	}
	a.log.Infow("wrote default menu", "path", a.Menu.Path())
}

func (a *App) onReady() {
	a.Status.SetupStatusItem()
	a.SeedDefaults()
	a.Reload()
	a.startWatcher()
}

func (a *App) startWatcher() {
	w, err := watcher.New(a.log.Named("watcher"))
	if err != nil {
		a.log.Warnw("menu file watching disabled", "error", err)
		return
	}
	if err := w.WatchFile(a.Menu.Path()); err != nil {
		a.log.Warnw("menu file watching disabled", "error", err)
		w.Stop()
		return
	}
	w.Start()
	a.watcher = w

	go func() {
		for {
			select {
			case <-w.Done():
				return
			case ev := <-w.Events():
				a.log.Debugw("menu file changed", "path", ev.Path, "op", ev.Op.String())
				a.Reload()
			}
		}
	}()
}

func (a *App) shutdown() {
	if a.watcher != nil {
		a.watcher.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Window.Close(ctx); err != nil {
		a.log.Warnw("failed to stop home page server", "error", err)
	}
}
