package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clipclic-storefront-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

var productColumns = []string{"id", "title", "description", "price", "category", "images", "in_banner", "in_stock"}

func TestGormStore_ListProducts(t *testing.T) {
	testCases := []struct {
		name             string
		filter           ProductFilter
		mockExpectations func(mock sqlmock.Sqlmock)
		expectedIDs      []int64
		expectedErr      bool
	}{
		{
			name:   "No filter returns every valid product",
			filter: ProductFilter{},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" ORDER BY id`)).
					WillReturnRows(sqlmock.NewRows(productColumns).
						AddRow(1, "Cuaderno", "", 1990.0, "utiles", `["c.png"]`, nil, true).
						AddRow(2, "Audífonos", "", 15990.0, "audio", `[]`, true, nil))
			},
			expectedIDs: []int64{1, 2},
		},
		{
			name:   "Rows with an unknown category are skipped",
			filter: ProductFilter{},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" ORDER BY id`)).
					WillReturnRows(sqlmock.NewRows(productColumns).
						AddRow(1, "Cuaderno", "", 1990.0, "utiles", `[]`, nil, nil).
						AddRow(2, "Polera", "", 5000.0, "ropa", `[]`, nil, nil))
			},
			expectedIDs: []int64{1},
		},
		{
			name:   "Category filter",
			filter: ProductFilter{Category: model.CategoryAudio},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE category = $1 ORDER BY id`)).
					WithArgs("audio").
					WillReturnRows(sqlmock.NewRows(productColumns).
						AddRow(2, "Audífonos", "", 15990.0, "audio", `[]`, nil, nil))
			},
			expectedIDs: []int64{2},
		},
		{
			name:   "Out of stock filter also matches unset flag",
			filter: ProductFilter{InStock: model.Bool(false)},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE in_stock IS NULL OR in_stock = $1 ORDER BY id`)).
					WithArgs(false).
					WillReturnRows(sqlmock.NewRows(productColumns))
			},
			expectedIDs: []int64{},
		},
		{
			name:   "Title search is lowercased and escaped",
			filter: ProductFilter{Query: " 100% Cable "},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "products" WHERE LOWER\(title\) LIKE \$1`).
					WithArgs(`%100\% cable%`).
					WillReturnRows(sqlmock.NewRows(productColumns).
						AddRow(5, "Cable 100% cobre", "", 2990.0, "cables", `[]`, nil, true))
			},
			expectedIDs: []int64{5},
		},
		{
			name:   "Database error",
			filter: ProductFilter{},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
					WillReturnError(errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newTestDB(t)
			store := NewGormStore(gormDB)

			tc.mockExpectations(mock)

			products, err := store.ListProducts(context.Background(), tc.filter)

			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				ids := make([]int64, 0, len(products))
				for _, p := range products {
					ids = append(ids, p.ID)
				}
				assert.Equal(t, tc.expectedIDs, ids)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormStore_GetProduct(t *testing.T) {
	getQuery := `SELECT \* FROM "products" WHERE "products"."id" = \$1 ORDER BY "products"."id" LIMIT \$[0-9]+`

	t.Run("found", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		mock.ExpectQuery(getQuery).
			WithArgs(7, 1).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(7, "Disco SSD 1TB", "NVMe", 59990.0, "almacenamiento", `["ssd-1.png","ssd-2.png"]`, true, true))

		p, err := NewGormStore(gormDB).GetProduct(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Disco SSD 1TB", p.Title)
		assert.Equal(t, model.CategoryStorage, p.Category)
		assert.Equal(t, []string{"ssd-1.png", "ssd-2.png"}, p.Images)
		assert.True(t, p.IsInBanner())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		mock.ExpectQuery(getQuery).
			WithArgs(8, 1).
			WillReturnRows(sqlmock.NewRows(productColumns))

		_, err := NewGormStore(gormDB).GetProduct(context.Background(), 8)
		assert.True(t, errors.Is(err, ErrProductNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid row", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		mock.ExpectQuery(getQuery).
			WithArgs(9, 1).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(9, "Mouse", "", -10.0, "mouses-teclados", `[]`, nil, nil))

		_, err := NewGormStore(gormDB).GetProduct(context.Background(), 9)
		assert.True(t, errors.Is(err, model.ErrInvalidProduct))
	})
}

func TestGormStore_CountByCategory(t *testing.T) {
	gormDB, mock := newTestDB(t)
	mock.ExpectQuery(`SELECT category, COUNT\(\*\) as total FROM "products" GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "total"}).
			AddRow("audio", 3).
			AddRow("utiles", 12).
			AddRow("ropa", 1))

	counts, err := NewGormStore(gormDB).CountByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{
		{Category: model.CategorySchoolSupplies, Total: 12},
		{Category: model.CategoryChristmas, Total: 0},
		{Category: model.CategoryMousesKeyboards, Total: 0},
		{Category: model.CategoryAudio, Total: 3},
		{Category: model.CategoryCables, Total: 0},
		{Category: model.CategoryStorage, Total: 0},
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
