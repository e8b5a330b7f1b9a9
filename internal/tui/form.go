package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtools-app/gtools/internal/models"
)

// ItemForm is the add item overlay.
type ItemForm struct {
	inputs     []textinput.Model // title, url, category
	focusIndex int
}

// NewItemForm creates an empty form with the title field focused.
func NewItemForm() *ItemForm {
	placeholders := []string{"Title", "URL (optional, https://…)", "Category (optional)"}
	f := &ItemForm{}
	for _, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 512
		ti.Width = 48
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[0].Focus()
	return f
}

// Next moves focus to the following field, wrapping around.
func (f *ItemForm) Next() {
	f.inputs[f.focusIndex].Blur()
	f.focusIndex = (f.focusIndex + 1) % len(f.inputs)
	f.inputs[f.focusIndex].Focus()
}

// Update forwards a message to the focused field.
func (f *ItemForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
	return cmd
}

// Item builds a validated descriptor from the form. Entries with a URL
// open it; entries without one are plain labels.
func (f *ItemForm) Item() (models.MenuItem, error) {
	item := models.MenuItem{
		Title:    strings.TrimSpace(f.inputs[0].Value()),
		URL:      strings.TrimSpace(f.inputs[1].Value()),
		Category: strings.TrimSpace(f.inputs[2].Value()),
	}
	if item.URL != "" {
		item.Action = models.ActionOpenURL
	}
	if err := item.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// View renders the form.
func (f *ItemForm) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Add menu item"))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return formStyle.Render(b.String())
}
