package config

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/gtools-app/gtools/internal/models"
)

// The instance file marks the menu-bar process that currently owns the
// status item. `gtools run` refuses to start while it names a live process.

// LoadInstanceInfo reads instance.yaml. A missing file means no instance
// and yields nil without error.
func LoadInstanceInfo() (*models.InstanceInfo, error) {
	path, err := GlobalInstanceFile()
	if err != nil {
		return nil, err
	}
	if !FileExists(path) {
		return nil, nil
	}

	info := &models.InstanceInfo{}
	if err := LoadYAML(path, info); err != nil {
		return nil, err
	}
	return info, nil
}

// SaveInstanceInfo records the current menu-bar process.
func SaveInstanceInfo(info *models.InstanceInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}
	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveInstanceInfo releases the instance file. Removing a file that is
// already gone is not an error.
func RemoveInstanceInfo() error {
	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// IsInstanceRunning reports whether another menu-bar process holds the
// status item. A file left behind by a crashed process is cleared.
func IsInstanceRunning() (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo()
	if err != nil || info == nil {
		return false, nil, err
	}

	if !processAlive(info.PID) {
		_ = RemoveInstanceInfo()
		return false, info, nil
	}
	return true, info, nil
}

// processAlive sends signal 0, which checks for existence without
// delivering anything.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
