package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProduct is wrapped by every error returned from Product.Validate.
var ErrInvalidProduct = errors.New("invalid product")

// Category is one of the fixed catalog segments.
type Category string

const (
	CategorySchoolSupplies  Category = "utiles"
	CategoryChristmas       Category = "navidad"
	CategoryMousesKeyboards Category = "mouses-teclados"
	CategoryAudio           Category = "audio"
	CategoryCables          Category = "cables"
	CategoryStorage         Category = "almacenamiento"
)

var categories = []Category{
	CategorySchoolSupplies,
	CategoryChristmas,
	CategoryMousesKeyboards,
	CategoryAudio,
	CategoryCables,
	CategoryStorage,
}

// Categories returns all catalog categories in navigation order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.TrimSpace(raw))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", raw)
	}
	return c, nil
}

// Product is a catalog item as supplied by the catalog backend.
type Product struct {
	ID          int64    `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:256;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Category    Category `gorm:"size:32;index;not null" json:"category"`
	Images      []string `gorm:"serializer:json" json:"images"`
	InBanner    *bool    `json:"inBanner,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// IsInBanner treats an unset flag as false.
func (p Product) IsInBanner() bool {
	return p.InBanner != nil && *p.InBanner
}

// IsInStock treats an unset flag as false.
func (p Product) IsInStock() bool {
	return p.InStock != nil && *p.InStock
}

// Validate checks the schema constraints of a product record.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: product %d has an empty title", ErrInvalidProduct, p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %d has negative price %v", ErrInvalidProduct, p.ID, p.Price)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: product %d has unknown category %q", ErrInvalidProduct, p.ID, p.Category)
	}
	return nil
}

// Bool returns a pointer to v, for the optional product flags.
func Bool(v bool) *bool {
	return &v
}
