package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/config"
	"github.com/gtools-app/gtools/internal/menu"
	"github.com/gtools-app/gtools/internal/models"
)

// execute runs the root command against a temporary GTOOLS_HOME.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	addOpts.item = models.MenuItem{}
	addOpts.action = ""
	addOpts.separator = false
	addOpts.at = 0
	initForce = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setupHome(t *testing.T) *menu.DataManager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)
	return menu.NewDataManager(filepath.Join(dir, config.MenuItemsFileName), zap.NewNop().Sugar())
}

func TestInitWritesDefaults(t *testing.T) {
	store := setupHome(t)

	_, err := execute(t, "init")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMenuItems(), store.LoadMenuItems())

	require.NoError(t, store.SaveMenuItems([]models.MenuItem{{Title: "Mine"}}))
	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
	assert.Equal(t, []models.MenuItem{{Title: "Mine"}}, store.LoadMenuItems())

	_, err = execute(t, "init", "--force")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMenuItems(), store.LoadMenuItems())
}

func TestInitWritesSettingsOnce(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "init")
	require.NoError(t, err)
	settings, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), settings)

	settings.Tray.Title = "GT"
	require.NoError(t, config.SaveSettings(settings))

	_, err = execute(t, "init", "--force")
	require.NoError(t, err)
	settings, err = config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "GT", settings.Tray.Title, "init keeps existing settings")
}

func TestItemsAddListRemoveMove(t *testing.T) {
	store := setupHome(t)

	out, err := execute(t, "items", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No menu items")

	_, err = execute(t, "items", "add", "--title", "Go", "--url", "https://go.dev", "--category", "Dev")
	require.NoError(t, err)
	_, err = execute(t, "items", "add", "--title", "Quit", "--action", "quit")
	require.NoError(t, err)
	_, err = execute(t, "items", "add", "--separator", "--at", "2")
	require.NoError(t, err)

	assert.Equal(t, []models.MenuItem{
		{Title: "Go", Action: models.ActionOpenURL, URL: "https://go.dev", Category: "Dev"},
		{Action: models.ActionSeparator},
		{Title: "Quit", Action: models.ActionQuit},
	}, store.LoadMenuItems())

	out, err = execute(t, "items", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Go [open_url] https://go.dev")
	assert.Contains(t, out, "Quit [quit]")

	_, err = execute(t, "items", "move", "3", "1")
	require.NoError(t, err)
	_, err = execute(t, "items", "rm", "3")
	require.NoError(t, err)

	assert.Equal(t, []models.MenuItem{
		{Title: "Quit", Action: models.ActionQuit},
		{Title: "Go", Action: models.ActionOpenURL, URL: "https://go.dev", Category: "Dev"},
	}, store.LoadMenuItems())

	_, err = execute(t, "items", "clear")
	require.NoError(t, err)
	assert.Empty(t, store.LoadMenuItems())
}

func TestItemsAddRejectsInvalid(t *testing.T) {
	store := setupHome(t)

	_, err := execute(t, "items", "add", "--title", "Bad", "--action", "launch")
	assert.Error(t, err)

	_, err = execute(t, "items", "add", "--action", "quit")
	assert.Error(t, err)

	_, err = execute(t, "items", "add", "--title", "X", "--at", "5")
	assert.Error(t, err)

	assert.False(t, store.Exists())
}

func TestItemsRemoveBadPosition(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "items", "remove", "zero")
	assert.Error(t, err)

	_, err = execute(t, "items", "remove", "1")
	assert.Error(t, err)
}

func TestPathAndVersion(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "path")
	require.NoError(t, err)
	assert.Contains(t, out, config.MenuItemsFileName)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "GTools")
}
