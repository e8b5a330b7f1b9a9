package statusitem

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/models"
)

const separatorTitle = "────────────"

// ClickHandler receives the descriptor rendered in a clicked entry.
type ClickHandler func(item models.MenuItem)

// StatusItem is the status-bar presence: the icon plus its pool of menu entries.
type StatusItem struct {
	title   string
	tooltip string
	entries []Entry
}

// Title returns the text shown next to the icon.
func (s *StatusItem) Title() string { return s.title }

// Tooltip returns the icon tooltip.
func (s *StatusItem) Tooltip() string { return s.tooltip }

// Options configures the status-bar presence.
type Options struct {
	Title   string
	Tooltip string
	OnClick ClickHandler
}

// Manager owns the single status-bar presence.
type Manager struct {
	backend Backend
	opts    Options
	log     *zap.SugaredLogger

	mu    sync.Mutex
	item  *StatusItem
	items []models.MenuItem // rendered descriptors, slot i shows items[i]
}

// NewManager creates a manager. Nothing is shown until SetupStatusItem.
func NewManager(backend Backend, opts Options, log *zap.SugaredLogger) *Manager {
	return &Manager{
		backend: backend,
		opts:    opts,
		log:     log,
	}
}

// Run starts the status-bar loop. This blocks the calling goroutine (must be main).
func (m *Manager) Run(onReady, onExit func()) {
	m.backend.Run(onReady, onExit)
}

// Quit signals the status-bar loop to exit.
func (m *Manager) Quit() {
	m.backend.Quit()
}

// StatusItem returns the status-bar presence, or nil before setup.
func (m *Manager) StatusItem() *StatusItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.item
}

// SetupStatusItem creates the status-bar presence. Later calls are no-ops.
// Menu items supplied before setup are rendered now.
func (m *Manager) SetupStatusItem() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.item != nil {
		return
	}

	m.backend.SetIcon(iconData)
	if m.opts.Title != "" {
		m.backend.SetTitle(m.opts.Title)
	}
	m.backend.SetTooltip(m.opts.Tooltip)

	m.item = &StatusItem{
		title:   m.opts.Title,
		tooltip: m.opts.Tooltip,
	}
	m.render()
	m.log.Debugw("status item ready", "entries", len(m.items))
}

// UpdateMenuItems replaces the dropdown contents with items, in order.
func (m *Manager) UpdateMenuItems(items []models.MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = append([]models.MenuItem(nil), items...)
	if m.item == nil {
		return
	}
	m.render()
}

// render must be called with mu held.
// Entries can't be removed from the native menu, so the pool only grows:
// surplus entries are hidden.
func (m *Manager) render() {
	for len(m.item.entries) < len(m.items) {
		entry := m.backend.AddMenuItem("", "")
		slot := len(m.item.entries)
		m.item.entries = append(m.item.entries, entry)
		go m.handleClicks(slot, entry)
	}

	for i, entry := range m.item.entries {
		if i >= len(m.items) {
			entry.Hide()
			continue
		}
		renderEntry(entry, m.items[i])
	}
}

func renderEntry(entry Entry, item models.MenuItem) {
	if item.IsSeparator() {
		entry.SetTitle(separatorTitle)
		entry.SetTooltip("")
		entry.Disable()
		entry.Uncheck()
		entry.Show()
		return
	}

	entry.SetTitle(item.Title)
	entry.SetTooltip(item.Tooltip)
	if item.Disabled {
		entry.Disable()
	} else {
		entry.Enable()
	}
	if item.Checked {
		entry.Check()
	} else {
		entry.Uncheck()
	}
	entry.Show()
}

func (m *Manager) handleClicks(slot int, entry Entry) {
	for range entry.Clicked() {
		m.dispatch(slot)
	}
}

func (m *Manager) dispatch(slot int) {
	m.mu.Lock()
	if slot >= len(m.items) {
		m.mu.Unlock()
		return
	}
	item := m.items[slot]
	m.mu.Unlock()

	if item.IsSeparator() || item.Disabled || item.Action == models.ActionNone {
		return
	}
	m.log.Debugw("menu item clicked", "slot", slot, "title", item.Title, "action", item.Action)
	if m.opts.OnClick != nil {
		m.opts.OnClick(item)
	}
}
