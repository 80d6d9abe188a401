package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// LowStockThreshold is the quantity below which an item counts as low stock.
const LowStockThreshold = 5

// TimestampLayout is the ISO-8601 form used for DateAdded on the wire and in exports.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrInvalidItem = errors.New("invalid item")

type InventoryItem struct {
	ID        string
	Name      string
	Quantity  int
	Category  string // empty means uncategorized
	DateAdded time.Time
}

// IsLowStock reports whether the item is strictly below LowStockThreshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity < LowStockThreshold
}

// ApplyDelta returns q+delta bounded to [0, math.MaxInt]. q must not be negative.
func ApplyDelta(q, delta int) int {
	if delta > 0 && q > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, q+delta)
}

// NewItem is the user-supplied part of an InventoryItem.
type NewItem struct {
	Name     string
	Quantity int
	Category string
}

// ValidationError describes a rejected field. It matches ErrInvalidItem.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidItem
}

// Validate checks the fields a caller must fill in before adding an item.
func (n NewItem) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if n.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}

// ParseQuantity parses a user-entered quantity. Only plain non-negative
// base-10 integers are accepted.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: "quantity", Reason: "must not be empty"}
	}
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "quantity", Reason: fmt.Sprintf("%q is not a whole number", s)}
	}
	if q < 0 {
		return 0, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return q, nil
}

// FormatTimestamp renders t in TimestampLayout, always in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
