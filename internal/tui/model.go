package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/gtools-app/gtools/internal/menu"
	"github.com/gtools-app/gtools/internal/models"
)

// Store is the persisted menu the editor works on.
type Store interface {
	Path() string
	LoadMenuItems() []models.MenuItem
	SaveMenuItems(items []models.MenuItem) error
}

type savedMsg struct {
	count int
	rev   int // edit revision the save was taken at
	err   error
}

// Model is the menu editor state.
type Model struct {
	store  Store
	items  []models.MenuItem
	cursor int
	dirty  bool
	rev    int // bumped on every edit
	status string
	err    error
	width  int

	saving   bool
	quitting bool // quit once the pending save lands

	form *ItemForm
	help help.Model
}

// NewModel loads the menu from store.
func NewModel(store Store) Model {
	return Model{
		store: store,
		items: store.LoadMenuItems(),
		help:  help.New(),
	}
}

// Items returns the edited, possibly unsaved, list.
func (m Model) Items() []models.MenuItem {
	return m.items
}

// Dirty reports whether there are unsaved edits.
func (m Model) Dirty() bool {
	return m.dirty
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			m.quitting = false
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Saved %d items", msg.count)
		if msg.rev == m.rev {
			m.dirty = false
		} else {
			m.status += ", newer edits are unsaved"
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.handleFormKey(msg)
		}
		return m.handleListKey(msg)
	}

	if m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, listKeys.Quit):
		if m.saving {
			m.quitting = true
			m.status = "Waiting for save to finish…"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, listKeys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, listKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, listKeys.MoveUp):
		if m.cursor > 0 {
			m.move(m.cursor - 1)
		}

	case key.Matches(msg, listKeys.MoveDown):
		if m.cursor < len(m.items)-1 {
			m.move(m.cursor + 1)
		}

	case key.Matches(msg, listKeys.Add):
		m.form = NewItemForm()
		return m, nil

	case key.Matches(msg, listKeys.Separator):
		m.insert(models.MenuItem{Action: models.ActionSeparator})

	case key.Matches(msg, listKeys.Delete):
		if len(m.items) == 0 {
			break
		}
		items, _, err := menu.Remove(m.items, m.cursor+1)
		if err != nil {
			m.err = err
			break
		}
		m.items = items
		m.touch()
		if m.cursor >= len(m.items) && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, listKeys.Disable):
		if len(m.items) > 0 && !m.items[m.cursor].IsSeparator() {
			m.items = cloneItems(m.items)
			m.items[m.cursor].Disabled = !m.items[m.cursor].Disabled
			m.touch()
		}

	case key.Matches(msg, listKeys.Check):
		if len(m.items) > 0 && !m.items[m.cursor].IsSeparator() {
			m.items = cloneItems(m.items)
			m.items[m.cursor].Checked = !m.items[m.cursor].Checked
			m.touch()
		}

	case key.Matches(msg, listKeys.Save):
		m.saving = true
		return m, saveCmd(m.store, m.items, m.rev)

	case key.Matches(msg, listKeys.Reload):
		m.items = m.store.LoadMenuItems()
		m.rev++
		m.dirty = false
		m.err = nil
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		m.status = "Reverted to saved menu"
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Cancel):
		m.form = nil
		return m, nil

	case key.Matches(msg, formKeys.Next):
		m.form.Next()
		return m, nil

	case key.Matches(msg, formKeys.Submit):
		item, err := m.form.Item()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.form = nil
		m.insert(item)
		return m, nil
	}

	return m, m.form.Update(msg)
}

// insert places item below the cursor and selects it.
func (m *Model) insert(item models.MenuItem) {
	pos := m.cursor + 2
	if len(m.items) == 0 {
		pos = 1
	}
	items, err := menu.Insert(m.items, pos, item)
	if err != nil {
		m.err = err
		return
	}
	m.items = items
	m.cursor = pos - 1
	m.touch()
}

// move relocates the selected item to index to and keeps it selected.
func (m *Model) move(to int) {
	items, err := menu.Move(m.items, m.cursor+1, to+1)
	if err != nil {
		m.err = err
		return
	}
	m.items = items
	m.cursor = to
	m.touch()
}

// touch marks the list as edited. A save taken at an older revision no
// longer clears the unsaved marker.
func (m *Model) touch() {
	m.rev++
	m.dirty = true
}

func saveCmd(store Store, items []models.MenuItem, rev int) tea.Cmd {
	items = cloneItems(items)
	return func() tea.Msg {
		err := store.SaveMenuItems(items)
		return savedMsg{count: len(items), rev: rev, err: err}
	}
}

func cloneItems(items []models.MenuItem) []models.MenuItem {
	return append([]models.MenuItem(nil), items...)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := headerStyle.Render("GTools menu")
	if m.dirty {
		title += " " + dirtyStyle.Render("● unsaved")
	}
	b.WriteString(title + "\n")
	b.WriteString(pathStyle.Render(m.store.Path()) + "\n\n")

	if len(m.items) == 0 {
		b.WriteString(pathStyle.Render("  (empty menu, press a to add an item)") + "\n")
	}
	for i, item := range m.items {
		b.WriteString(renderRow(item, i == m.cursor, m.width) + "\n")
	}
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.form.View() + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(checkStyle.Render(m.status) + "\n")
	}

	if m.form != nil {
		b.WriteString(m.help.View(formKeys))
	} else {
		b.WriteString(m.help.View(listKeys))
	}
	return b.String()
}

// renderRow draws one list row, truncated to width when width is known.
func renderRow(item models.MenuItem, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("▸ ")
	}

	if item.IsSeparator() {
		return prefix + pathStyle.Render("────────────")
	}

	title := itemStyle.Render(item.Title)
	if item.Disabled {
		title = disabledStyle.Render(item.Title)
	}
	row := prefix + title
	if item.Action != models.ActionNone {
		row += " " + actionStyle.Render(string(item.Action))
	}
	if item.URL != "" {
		row += " " + pathStyle.Render(item.URL)
	}
	if item.Checked {
		row += " " + checkStyle.Render("✓")
	}

	if width > 0 {
		row = ansi.Truncate(row, width, "…")
	}
	return row
}
