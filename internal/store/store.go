package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"clipclic-storefront-backend/internal/model"
)

// Store defines the read-only catalog queries used by the API.
type Store interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListProducts returns the products matching filter, ordered by id.
// Rows that break the product schema are skipped.
func (s *gormStore) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	q := s.db.WithContext(ctx).Model(&model.Product{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	q = whereFlag(q, "in_banner", filter.InBanner)
	q = whereFlag(q, "in_stock", filter.InStock)
	if term := strings.TrimSpace(filter.Query); term != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(term))+"%")
	}

	var rows []model.Product
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]model.Product, 0, len(rows))
	for _, p := range rows {
		if err := p.Validate(); err != nil {
			log.Printf("Warning: skipping product row: %v", err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// An unset flag counts as false.
func whereFlag(q *gorm.DB, column string, want *bool) *gorm.DB {
	if want == nil {
		return q
	}
	if *want {
		return q.Where(column+" = ?", true)
	}
	return q.Where(column+" IS NULL OR "+column+" = ?", false)
}

// GetProduct returns the product with the given id.
func (s *gormStore) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return model.Product{}, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// CountByCategory returns one entry per declared category, in navigation
// order, including categories with no products.
func (s *gormStore) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	type aggRow struct {
		Category string
		Total    int64
	}
	var aggs []aggRow
	if err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("category, COUNT(*) as total").
		Group("category").
		Scan(&aggs).Error; err != nil {
		return nil, fmt.Errorf("failed to count products by category: %w", err)
	}

	totals := make(map[model.Category]int64, len(aggs))
	for _, a := range aggs {
		c := model.Category(a.Category)
		if !c.Valid() {
			log.Printf("Warning: %d products have unknown category %q", a.Total, a.Category)
			continue
		}
		totals[c] = a.Total
	}

	categories := model.Categories()
	counts := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		counts = append(counts, CategoryCount{Category: c, Total: totals[c]})
	}
	return counts, nil
}
