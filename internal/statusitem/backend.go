// Package statusitem implements the status-bar icon and its dropdown menu.
package statusitem

import (
	_ "embed"
)

//go:embed icon.png
var iconData []byte

// Backend is the OS status-bar integration.
type Backend interface {
	// Run blocks the calling goroutine (must be main) until Quit.
	Run(onReady, onExit func())
	Quit()
	SetIcon(icon []byte)
	SetTitle(title string)
	SetTooltip(tooltip string)
	AddMenuItem(title, tooltip string) Entry
}

// Entry is a single row of the status-bar menu.
type Entry interface {
	SetTitle(title string)
	SetTooltip(tooltip string)
	Enable()
	Disable()
	Check()
	Uncheck()
	Show()
	Hide()
	Clicked() <-chan struct{}
}
