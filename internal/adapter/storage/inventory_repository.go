package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/port"
)

// StorageKey is the only key the inventory repository reads or writes.
const StorageKey = "pinkStockInventory"

// itemRecord is the persisted shape of one item.
type itemRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category,omitempty"`
	DateAdded string `json:"dateAdded"`
}

// InventoryRepository stores the whole collection as one JSON array blob.
type InventoryRepository struct {
	kv  port.KeyValueStore
	key string
}

func NewInventoryRepository(kv port.KeyValueStore) *InventoryRepository {
	return &InventoryRepository{kv: kv, key: StorageKey}
}

// WithKey returns a copy of the repository bound to a different key.
func (r *InventoryRepository) WithKey(key string) *InventoryRepository {
	return &InventoryRepository{kv: r.kv, key: key}
}

func (r *InventoryRepository) Load(ctx context.Context) ([]domain.InventoryItem, error) {
	blob, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil, port.ErrNoInventory
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	items, err := decodeInventory([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrCorruptInventory, err)
	}
	return items, nil
}

func (r *InventoryRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	blob, err := encodeInventory(items)
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, string(blob)); err != nil {
		return fmt.Errorf("write inventory: %w", err)
	}
	return nil
}

func encodeInventory(items []domain.InventoryItem) ([]byte, error) {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Category:  item.Category,
			DateAdded: domain.FormatTimestamp(item.DateAdded),
		})
	}
	return json.Marshal(records)
}

func decodeInventory(blob []byte) ([]domain.InventoryItem, error) {
	var records []itemRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errors.New("inventory is null")
	}

	items := make([]domain.InventoryItem, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, rec.ID)
		}
		seen[rec.ID] = struct{}{}
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("record %d: missing name", i)
		}
		if rec.Quantity < 0 {
			return nil, fmt.Errorf("record %d: negative quantity %d", i, rec.Quantity)
		}
		added, err := time.Parse(time.RFC3339Nano, rec.DateAdded)
		if err != nil {
			return nil, fmt.Errorf("record %d: dateAdded: %w", i, err)
		}

		items = append(items, domain.InventoryItem{
			ID:        rec.ID,
			Name:      rec.Name,
			Quantity:  rec.Quantity,
			Category:  rec.Category,
			DateAdded: added.UTC(),
		})
	}
	return items, nil
}
