package service

import (
	"time"

	"github.com/rl1809/pinkstock/internal/core/domain"
)

// SeedItems returns the example inventory used when nothing valid is stored.
func SeedItems() []domain.InventoryItem {
	at := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}
	return []domain.InventoryItem{
		{ID: "1", Name: "Pink Fabric Rolls", Quantity: 12, Category: "Textiles", DateAdded: at("2023-10-01T10:00:00Z")},
		{ID: "2", Name: "Rose Gold Zippers", Quantity: 4, Category: "Notions", DateAdded: at("2023-10-02T11:30:00Z")},
		{ID: "3", Name: "Blush Sewing Thread", Quantity: 25, Category: "Notions", DateAdded: at("2023-10-03T09:00:00Z")},
		{ID: "4", Name: "Pastel Buttons Pack", Quantity: 8, Category: "Notions", DateAdded: at("2023-10-04T14:20:00Z")},
		{ID: "5", Name: "Cotton Candy Stuffing", Quantity: 2, Category: "Fillings", DateAdded: at("2023-10-05T16:00:00Z")},
	}
}
