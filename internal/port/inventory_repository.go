package port

import (
	"context"
	"errors"

	"github.com/rl1809/pinkstock/internal/core/domain"
)

var (
	ErrNoInventory      = errors.New("no stored inventory")
	ErrCorruptInventory = errors.New("corrupt stored inventory")
)

type InventoryRepository interface {
	// Load reads the whole collection. It returns ErrNoInventory when nothing
	// was ever saved and ErrCorruptInventory when the stored blob is unusable.
	Load(ctx context.Context) ([]domain.InventoryItem, error)

	// Save overwrites the stored collection with items
	Save(ctx context.Context, items []domain.InventoryItem) error
}
