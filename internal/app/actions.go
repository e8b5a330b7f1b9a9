package app

import (
	"github.com/gtools-app/gtools/internal/models"
)

// HandleClick performs the action of a clicked menu entry.
// Failures are logged; the menu stays usable.
func (a *App) HandleClick(item models.MenuItem) {
	switch item.Action {
	case models.ActionOpenURL:
		if err := a.opener.Open(item.URL); err != nil {
			a.log.Warnw("failed to open url", "url", item.URL, "error", err)
		}

	case models.ActionShowWindow:
		if err := a.Window.ShowWindow(); err != nil {
			a.log.Warnw("failed to show window", "error", err)
		}

	case models.ActionReload:
		a.Reload()

	case models.ActionEditConfig:
		a.SeedDefaults()
		if err := a.opener.Open(a.Menu.Path()); err != nil {
			a.log.Warnw("failed to open menu file", "path", a.Menu.Path(), "error", err)
		}

	case models.ActionQuit:
		a.Quit()

	default:
		a.log.Debugw("ignoring click", "title", item.Title, "action", item.Action)
	}
}
