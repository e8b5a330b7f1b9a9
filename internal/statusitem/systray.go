package statusitem

import (
	"github.com/getlantern/systray"
)

type systrayBackend struct{}

// NewSystrayBackend returns the Backend backed by the native system tray.
func NewSystrayBackend() Backend {
	return systrayBackend{}
}

func (systrayBackend) Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

func (systrayBackend) Quit() {
	systray.Quit()
}

func (systrayBackend) SetIcon(icon []byte) {
	systray.SetTemplateIcon(icon, icon)
}

func (systrayBackend) SetTitle(title string) {
	systray.SetTitle(title)
}

func (systrayBackend) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

func (systrayBackend) AddMenuItem(title, tooltip string) Entry {
	return systrayEntry{systray.AddMenuItem(title, tooltip)}
}

type systrayEntry struct {
	*systray.MenuItem
}

func (e systrayEntry) Clicked() <-chan struct{} {
	return e.ClickedCh
}
