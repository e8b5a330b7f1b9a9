// Package models defines the data persisted under the global GTools directory.
package models

import (
	"fmt"
	"net/url"
	"strings"
)

// MenuAction identifies what happens when a menu entry is clicked.
type MenuAction string

// Menu actions. The zero value is a plain label with no click behaviour.
const (
	ActionNone       MenuAction = ""
	ActionOpenURL    MenuAction = "open_url"
	ActionShowWindow MenuAction = "show_window"
	ActionReload     MenuAction = "reload"
	ActionEditConfig MenuAction = "edit_config"
	ActionQuit       MenuAction = "quit"
	ActionSeparator  MenuAction = "separator"
)

// DefaultCategory groups home page links that don't name a category.
const DefaultCategory = "General"

// IsValid reports whether a is a known action.
func (a MenuAction) IsValid() bool {
	switch a {
	case ActionNone, ActionOpenURL, ActionShowWindow, ActionReload,
		ActionEditConfig, ActionQuit, ActionSeparator:
		return true
	}
	return false
}

// MenuItem describes one entry of the status-bar menu.
// Entries have no identity beyond their position in the list.
type MenuItem struct {
	Title    string     `yaml:"title,omitempty" json:"title,omitempty"`
	Action   MenuAction `yaml:"action,omitempty" json:"action,omitempty"`
	URL      string     `yaml:"url,omitempty" json:"url,omitempty"`
	Tooltip  string     `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
	Icon     string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Desc     string     `yaml:"desc,omitempty" json:"desc,omitempty"`
	Category string     `yaml:"category,omitempty" json:"category,omitempty"`
	Disabled bool       `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Checked  bool       `yaml:"checked,omitempty" json:"checked,omitempty"`
}

// IsSeparator reports whether the entry is a separator line.
func (m MenuItem) IsSeparator() bool {
	return m.Action == ActionSeparator
}

// CategoryName returns the home page group of the entry.
func (m MenuItem) CategoryName() string {
	if c := strings.TrimSpace(m.Category); c != "" {
		return c
	}
	return DefaultCategory
}

// Validate checks that the descriptor can be rendered and dispatched.
func (m MenuItem) Validate() error {
	if !m.Action.IsValid() {
		return fmt.Errorf("unknown action %q", m.Action)
	}
	if m.IsSeparator() {
		return nil
	}
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if m.Action == ActionOpenURL {
		if m.URL == "" {
			return fmt.Errorf("%q: url is required for %s", m.Title, ActionOpenURL)
		}
		u, err := url.Parse(m.URL)
		if err != nil {
			return fmt.Errorf("%q: invalid url: %w", m.Title, err)
		}
		switch u.Scheme {
		case "http", "https", "file":
		default:
			return fmt.Errorf("%q: unsupported url scheme %q", m.Title, u.Scheme)
		}
	}
	return nil
}

// MenuList is the persisted menu configuration.
// This corresponds to ~/.gtools/menu_items.yaml.
type MenuList struct {
	Version int        `yaml:"version"`
	Items   []MenuItem `yaml:"items"`
}

// NewMenuList creates an empty menu list.
func NewMenuList() *MenuList {
	return &MenuList{
		Version: 1,
		Items:   []MenuItem{},
	}
}

// DefaultMenuItems returns the menu seeded on first run.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Title: "Open GTools", Action: ActionShowWindow, Tooltip: "Show the home page"},
		{Action: ActionSeparator},
		{Title: "Reload Menu", Action: ActionReload},
		{Title: "Edit Menu…", Action: ActionEditConfig, Tooltip: "Open menu_items.yaml"},
		{Action: ActionSeparator},
		{Title: "Quit", Action: ActionQuit},
	}
}
