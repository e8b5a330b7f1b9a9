package menu

import (
	"fmt"

	"github.com/gtools-app/gtools/internal/models"
)

// Positions are 1-based, matching what `gtools items list` prints.

// Insert returns items with item inserted at position pos.
// pos 0 or len+1 appends.
func Insert(items []models.MenuItem, pos int, item models.MenuItem) ([]models.MenuItem, error) {
	if pos == 0 {
		pos = len(items) + 1
	}
	if pos < 1 || pos > len(items)+1 {
		return nil, fmt.Errorf("position %d out of range 1-%d", pos, len(items)+1)
	}

	out := make([]models.MenuItem, 0, len(items)+1)
	out = append(out, items[:pos-1]...)
	out = append(out, item)
	out = append(out, items[pos-1:]...)
	return out, nil
}

// Remove returns items without the entry at position pos.
func Remove(items []models.MenuItem, pos int) ([]models.MenuItem, models.MenuItem, error) {
	if err := checkPos(items, pos); err != nil {
		return nil, models.MenuItem{}, err
	}

	removed := items[pos-1]
	out := make([]models.MenuItem, 0, len(items)-1)
	out = append(out, items[:pos-1]...)
	out = append(out, items[pos:]...)
	return out, removed, nil
}

// Move returns items with the entry at from relocated to position to.
func Move(items []models.MenuItem, from, to int) ([]models.MenuItem, error) {
	if err := checkPos(items, from); err != nil {
		return nil, err
	}
	if err := checkPos(items, to); err != nil {
		return nil, err
	}

	rest, item, _ := Remove(items, from)
	return Insert(rest, to, item)
}

func checkPos(items []models.MenuItem, pos int) error {
	if len(items) == 0 {
		return fmt.Errorf("menu is empty")
	}
	if pos < 1 || pos > len(items) {
		return fmt.Errorf("position %d out of range 1-%d", pos, len(items))
	}
	return nil
}
