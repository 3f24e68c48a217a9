package model

import (
	"fmt"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
)

// Category identifies a mutual fund category. The engine branches on this
// type exhaustively; adding a category means touching every switch the
// compiler flags.
type Category string

const (
	CategoryLargeCap Category = "large_cap"
	CategoryMidCap   Category = "mid_cap"
	CategoryFlexiCap Category = "flexi_cap"
	CategorySmallCap Category = "small_cap"
	CategoryMultiCap Category = "multi_cap"
)

// Categories returns all fund categories in their canonical order.
// Allocation plans and catalog listings iterate in this order.
func Categories() []Category {
	return []Category{
		CategoryLargeCap,
		CategoryMidCap,
		CategoryFlexiCap,
		CategorySmallCap,
		CategoryMultiCap,
	}
}

// ParseCategory converts a string to a Category.
// Returns an error for unknown values; callers decide whether to fall back.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryLargeCap, CategoryMidCap, CategoryFlexiCap, CategorySmallCap, CategoryMultiCap:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, s)
}

// Title returns the display name of the category, e.g. "Large Cap".
func (c Category) Title() string {
	switch c {
	case CategoryLargeCap:
		return "Large Cap"
	case CategoryMidCap:
		return "Mid Cap"
	case CategoryFlexiCap:
		return "Flexi Cap"
	case CategorySmallCap:
		return "Small Cap"
	case CategoryMultiCap:
		return "Multi Cap"
	}
	return string(c)
}
