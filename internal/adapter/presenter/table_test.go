package presenter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/view"
)

func TestRenderItems(t *testing.T) {
	var buf bytes.Buffer
	RenderItems(&buf, []domain.InventoryItem{
		{ID: "1", Name: "Pink Fabric", Quantity: 12, Category: "Textiles", DateAdded: time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Loose Pins", Quantity: 2, DateAdded: time.Date(2023, 10, 2, 11, 30, 0, 0, time.UTC)},
	})

	out := buf.String()
	for _, want := range []string{"Pink Fabric", "Textiles", "2023-10-01 10:00", "Loose Pins", lowStockMark} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	// go-pretty upper-cases footers by default
	if !strings.Contains(strings.ToUpper(out), "2 ITEMS") {
		t.Errorf("expected item count footer:\n%s", out)
	}
	if strings.Count(out, lowStockMark) != 1 {
		t.Errorf("expected exactly one low stock mark:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, view.Summary{TotalItems: 3, TotalQuantity: 41, LowStockCount: 1})

	out := buf.String()
	for _, want := range []string{"Total Items", "41", "Low Stock Alerts"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderCategories(t *testing.T) {
	var buf bytes.Buffer
	RenderCategories(&buf, []string{"Notions", "Textiles"})

	if out := buf.String(); !strings.Contains(out, "Notions") || !strings.Contains(out, "Textiles") {
		t.Errorf("missing categories:\n%s", out)
	}
}
