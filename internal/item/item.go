package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("item not found")
	ErrDuplicate   = errors.New("item already exists")
	ErrNotArchived = errors.New("item is not archived")
)

// Category classifies an item for the analytics breakdown.
type Category string

const (
	CategoryFood  Category = "Food"
	CategoryDrink Category = "Drink"
)

// ParseCategory maps a free-form string (CSV uploads, JSON bodies) to a
// Category. Empty input defaults to Food.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "food":
		return CategoryFood, true
	case "drink":
		return CategoryDrink, true
	}

	return "", false
}

// Item is something buyable from the cupboard. Names are unique among
// active items, compared case-insensitively. Prices are integer pence.
type Item struct {
	ID         uuid.UUID
	Name       string
	PricePence int64
	Category   Category
	ArchivedAt *time.Time
}

// Archived reports whether the item has been soft-deleted.
func (it *Item) Archived() bool {
	return it.ArchivedAt != nil
}
