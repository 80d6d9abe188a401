// Package presenter renders inventory views as terminal tables.
package presenter

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/view"
)

const lowStockMark = "LOW"

func RenderItems(w io.Writer, items []domain.InventoryItem) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Qty", "Category", "Added", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	for _, item := range items {
		mark := ""
		if item.IsLowStock() {
			mark = lowStockMark
		}
		category := item.Category
		if category == "" {
			category = "-"
		}
		t.AppendRow(table.Row{item.ID, item.Name, item.Quantity, category, item.DateAdded.Format("2006-01-02 15:04"), mark})
	}
	t.AppendFooter(table.Row{"", strconv.Itoa(len(items)) + " items"})
	t.Render()
}

func RenderSummary(w io.Writer, s view.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Total Items", s.TotalItems},
		{"Total Quantity", s.TotalQuantity},
		{"Low Stock Alerts", s.LowStockCount},
	})
	t.Render()
}

func RenderCategories(w io.Writer, categories []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category"})
	for _, c := range categories {
		t.AppendRow(table.Row{c})
	}
	t.Render()
}
