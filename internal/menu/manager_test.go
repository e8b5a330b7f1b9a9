package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/models"
)

func newTestManager(t *testing.T) *DataManager {
	t.Helper()
	return NewDataManager(filepath.Join(t.TempDir(), "menu_items.yaml"), zap.NewNop().Sugar())
}

func TestLoadMenuItemsMissingFile(t *testing.T) {
	m := newTestManager(t)

	items := m.LoadMenuItems()
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.False(t, m.Exists())
}

func TestLoadMenuItemsCorruptFile(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.Path(), []byte("items: {not: [a list"), 0644))

	assert.Empty(t, m.LoadMenuItems())
}

func TestSaveThenLoadPreservesOrder(t *testing.T) {
	m := newTestManager(t)
	want := []models.MenuItem{{Title: "Open"}, {Title: "Quit"}}

	require.NoError(t, m.SaveMenuItems(want))
	assert.Equal(t, want, m.LoadMenuItems())
}

func TestSaveReplacesWholesale(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.SaveMenuItems(models.DefaultMenuItems()))
	require.NoError(t, m.SaveMenuItems([]models.MenuItem{{Title: "Only"}}))
	assert.Equal(t, []models.MenuItem{{Title: "Only"}}, m.LoadMenuItems())

	require.NoError(t, m.SaveMenuItems(nil))
	assert.Empty(t, m.LoadMenuItems())
	assert.True(t, m.Exists())
}

func TestRoundTripAllFields(t *testing.T) {
	m := newTestManager(t)
	want := []models.MenuItem{
		{Title: "Go", Action: models.ActionOpenURL, URL: "https://go.dev", Icon: "🐹", Desc: "Docs", Category: "Dev", Tooltip: "go.dev"},
		{Action: models.ActionSeparator},
		{Title: "Beta", Action: models.ActionShowWindow, Disabled: true, Checked: true},
		{Title: "Go", Action: models.ActionOpenURL, URL: "https://go.dev"},
	}

	require.NoError(t, m.SaveMenuItems(want))
	assert.Equal(t, want, m.LoadMenuItems())
}

func TestLoadDropsInvalidItems(t *testing.T) {
	m := newTestManager(t)
	data := `version: 1
items:
  - title: First
  - title: Broken
    action: open_url
  - action: teleport
    title: Nope
  - title: Last
    action: quit
`
	require.NoError(t, os.WriteFile(m.Path(), []byte(data), 0644))

	assert.Equal(t, []models.MenuItem{
		{Title: "First"},
		{Title: "Last", Action: models.ActionQuit},
	}, m.LoadMenuItems())
}
