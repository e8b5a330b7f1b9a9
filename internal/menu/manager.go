// Package menu persists the ordered list of status-bar menu descriptors.
package menu

import (
	"go.uber.org/zap"

	"github.com/gtools-app/gtools/internal/config"
	"github.com/gtools-app/gtools/internal/models"
)

// DataManager owns the menu_items.yaml file.
type DataManager struct {
	path string
	log  *zap.SugaredLogger
}

// NewDataManager creates a manager for the menu file at path.
func NewDataManager(path string, log *zap.SugaredLogger) *DataManager {
	return &DataManager{path: path, log: log}
}

// NewDefaultDataManager creates a manager for ~/.gtools/menu_items.yaml.
func NewDefaultDataManager(log *zap.SugaredLogger) (*DataManager, error) {
	path, err := config.GlobalMenuItemsFile()
	if err != nil {
		return nil, err
	}
	return NewDataManager(path, log), nil
}

// Path returns the location of the menu file.
func (m *DataManager) Path() string {
	return m.path
}

// Exists reports whether the menu file has been written.
func (m *DataManager) Exists() bool {
	return config.FileExists(m.path)
}

// LoadMenuItems reads the persisted descriptors in display order.
// A missing or unreadable file yields an empty list. Invalid descriptors are
// dropped; the rest keep their relative order.
func (m *DataManager) LoadMenuItems() []models.MenuItem {
	list, err := config.LoadYAMLOrDefault(m.path, models.NewMenuList)
	if err != nil {
		m.log.Warnw("failed to load menu items", "path", m.path, "error", err)
		return []models.MenuItem{}
	}

	items := make([]models.MenuItem, 0, len(list.Items))
	for i, item := range list.Items {
		if err := item.Validate(); err != nil {
			m.log.Warnw("skipping invalid menu item", "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// SaveMenuItems replaces the persisted list with items.
func (m *DataManager) SaveMenuItems(items []models.MenuItem) error {
	list := models.NewMenuList()
	list.Items = append(list.Items, items...)
	if err := config.SaveYAML(m.path, list); err != nil {
		return err
	}
	m.log.Debugw("saved menu items", "path", m.path, "count", len(items))
	return nil
}
