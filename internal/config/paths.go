// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global GTools directory.
	GlobalDirName = ".gtools"

	// HomeEnv overrides the global directory location.
	HomeEnv = "GTOOLS_HOME"
)

// File names
const (
	MenuItemsFileName = "menu_items.yaml"
	SettingsFileName  = "settings.yaml"
	InstanceFileName  = "instance.yaml"
)

// GlobalDir returns the path to the global GTools directory (~/.gtools/),
// or $GTOOLS_HOME when set.
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalMenuItemsFile returns the path to the menu_items.yaml file.
func GlobalMenuItemsFile() (string, error) {
	return globalFile(MenuItemsFileName)
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return globalFile(SettingsFileName)
}

// GlobalInstanceFile returns the path to the instance.yaml file.
func GlobalInstanceFile() (string, error) {
	return globalFile(InstanceFileName)
}

func globalFile(name string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureGlobalDir creates the global GTools directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
