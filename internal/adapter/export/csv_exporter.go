// Package export writes the inventory as a CSV artifact.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rl1809/pinkstock/internal/core/domain"
)

// DefaultStem is the file name, without extension, used when none is given.
const DefaultStem = "pinkstock_inventory_backup"

var (
	ErrEmptyExport = errors.New("no items to export")
	ErrInvalidStem = errors.New("invalid export file stem")
)

var header = []string{"ID", "Name", "Quantity", "Category", "Date Added"}

// FileName returns the artifact name for stem.
func FileName(stem string) string {
	return stem + ".csv"
}

// ValidateStem rejects stems that are empty or would escape the target directory.
func ValidateStem(stem string) error {
	if strings.TrimSpace(stem) == "" || stem == "." || stem == ".." || strings.ContainsAny(stem, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidStem, stem)
	}
	return nil
}

// WriteCSV writes a header row and one row per item. Nothing is written for
// an empty collection.
func WriteCSV(w io.Writer, items []domain.InventoryItem) error {
	if len(items) == 0 {
		return ErrEmptyExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		row := []string{
			item.ID,
			item.Name,
			strconv.Itoa(item.Quantity),
			item.Category,
			domain.FormatTimestamp(item.DateAdded),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", item.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ToFile writes <dir>/<stem>.csv and returns its path. No file is created
// when the collection is empty.
func ToFile(dir, stem string, items []domain.InventoryItem) (string, error) {
	if err := ValidateStem(stem); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, items); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(stem))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
