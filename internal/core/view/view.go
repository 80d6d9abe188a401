// Package view derives read-only projections from an inventory collection.
package view

import (
	"slices"
	"strings"

	"github.com/rl1809/pinkstock/internal/core/domain"
)

const LowStockThreshold = domain.LowStockThreshold

type Summary struct {
	TotalItems    int
	TotalQuantity int
	LowStockCount int
}

// Filter narrows a collection. The zero value matches every item.
type Filter struct {
	Search       string // case-insensitive substring of Name
	Category     string // exact match; empty disables
	LowStockOnly bool
}

func Summarize(items []domain.InventoryItem) Summary {
	var s Summary
	s.TotalItems = len(items)
	for _, item := range items {
		s.TotalQuantity += item.Quantity
		if item.IsLowStock() {
			s.LowStockCount++
		}
	}
	return s
}

// Match reports whether item satisfies every predicate in f.
func (f Filter) Match(item domain.InventoryItem) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.LowStockOnly && !item.IsLowStock() {
		return false
	}
	return true
}

// Apply returns the items matching f, most recently added first. Items with
// equal DateAdded keep their collection order. items is not modified.
func Apply(items []domain.InventoryItem, f Filter) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.InventoryItem) int {
		return b.DateAdded.Compare(a.DateAdded)
	})
	return out
}
