package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/rl1809/pinkstock/internal/core/domain"
)

var day0 = time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC)

func sampleItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "fabric", Name: "Pink Fabric", Quantity: 12, Category: "Textiles", DateAdded: day0},
		{ID: "zipper", Name: "Rose Zipper", Quantity: 4, Category: "Notions", DateAdded: day0.Add(24 * time.Hour)},
		{ID: "thread", Name: "Thread", Quantity: 25, Category: "Notions", DateAdded: day0.Add(48 * time.Hour)},
	}
}

func ids(items []domain.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleItems())
	want := Summary{TotalItems: 3, TotalQuantity: 41, LowStockCount: 1}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", empty)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter sorts newest first", Filter{}, []string{"thread", "zipper", "fabric"}},
		{"low stock only", Filter{LowStockOnly: true}, []string{"zipper"}},
		{"category", Filter{Category: "Notions"}, []string{"thread", "zipper"}},
		{"search is case-insensitive", Filter{Search: "pink"}, []string{"fabric"}},
		{"search upper", Filter{Search: "ZIP"}, []string{"zipper"}},
		{"predicates combine", Filter{Category: "Notions", LowStockOnly: true}, []string{"zipper"}},
		{"category is exact", Filter{Category: "notions"}, []string{}},
		{"no match", Filter{Search: "velvet"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(sampleItems(), tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_StableForEqualDates(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: "first", Name: "A", Quantity: 1, DateAdded: day0},
		{ID: "newest", Name: "B", Quantity: 1, DateAdded: day0.Add(time.Minute)},
		{ID: "second", Name: "C", Quantity: 1, DateAdded: day0},
		{ID: "third", Name: "D", Quantity: 1, DateAdded: day0},
	}

	got := ids(Apply(items, Filter{}))
	want := []string{"newest", "first", "second", "third"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	before := ids(items)

	Apply(items, Filter{})

	if diff := cmp.Diff(before, ids(items)); diff != "" {
		t.Errorf("input reordered (-want +got):\n%s", diff)
	}
}

func TestLowStockBoundary(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: "at", Name: "At", Quantity: LowStockThreshold, DateAdded: day0},
		{ID: "below", Name: "Below", Quantity: LowStockThreshold - 1, DateAdded: day0},
		{ID: "zero", Name: "Zero", Quantity: 0, DateAdded: day0},
	}

	got := ids(Apply(items, Filter{LowStockOnly: true}))
	if diff := cmp.Diff([]string{"below", "zero"}, got); diff != "" {
		t.Errorf("unexpected low stock set (-want +got):\n%s", diff)
	}
	if n := Summarize(items).LowStockCount; n != 2 {
		t.Errorf("expected LowStockCount 2, got %d", n)
	}
}
