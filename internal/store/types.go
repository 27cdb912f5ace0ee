package store

import (
	"errors"

	"clipclic-storefront-backend/internal/model"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. Zero values mean "any".
type ProductFilter struct {
	Category model.Category
	// InBanner and InStock select on the flag; false also matches unset rows.
	InBanner *bool
	InStock  *bool
	// Query is a case-insensitive substring of the title.
	Query string
}

// CategoryCount is the number of products listed under one category.
type CategoryCount struct {
	Category model.Category `json:"category"`
	Total    int64          `json:"total"`
}
