package handler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/rl1809/pinkstock/internal/adapter/storage"
	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/service"
)

var added = time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC)

func fixtureItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "fabric", Name: "Pink Fabric", Quantity: 12, Category: "Textiles", DateAdded: added},
		{ID: "zipper", Name: "Rose Zipper", Quantity: 4, Category: "Notions", DateAdded: added.Add(time.Hour)},
		{ID: "thread", Name: "Thread", Quantity: 25, Category: "Notions", DateAdded: added.Add(2 * time.Hour)},
	}
}

// toggleKV fails writes while broken is set.
type toggleKV struct {
	*storage.MemoryAdapter
	broken atomic.Bool
}

func (k *toggleKV) Set(ctx context.Context, key, value string) error {
	if k.broken.Load() {
		return errors.New("storage unavailable")
	}
	return k.MemoryAdapter.Set(ctx, key, value)
}

func newTestInventory(t *testing.T, items []domain.InventoryItem) (*service.InventoryService, *toggleKV) {
	t.Helper()
	kv := &toggleKV{MemoryAdapter: storage.NewMemoryAdapter()}
	repo := storage.NewInventoryRepository(kv)
	if items != nil {
		if err := repo.Save(context.Background(), items); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}
	return service.NewInventoryService(context.Background(), repo, zaptest.NewLogger(t)), kv
}
