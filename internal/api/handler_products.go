package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clipclic-storefront-backend/internal/lang"
	"clipclic-storefront-backend/internal/model"
	"clipclic-storefront-backend/internal/mw"
	"clipclic-storefront-backend/internal/store"
)

type listProductsQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=utiles navidad mouses-teclados audio cables almacenamiento"`
	Query    string `form:"q" binding:"max=100"`
	InStock  *bool  `form:"inStock"`
	InBanner *bool  `form:"inBanner"`
}

// productListResponse carries the listing and its localized caption.
type productListResponse struct {
	Products     []model.Product `json:"products"`
	Total        int             `json:"total"`
	ResultsCount string          `json:"resultsCount"`
	NoResults    string          `json:"noResults,omitempty"`
}

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.store.ListProducts(c.Request.Context(), store.ProductFilter{
		Category: model.Category(q.Category),
		InStock:  q.InStock,
		InBanner: q.InBanner,
		Query:    q.Query,
	})
	if err != nil {
		log.Printf("Error listing products: %v", err)
		fail(c, http.StatusInternalServerError, "failed to retrieve products")
		return
	}

	texts, _ := lang.Texts(mw.LanguageFrom(c))
	resp := productListResponse{
		Products:     products,
		Total:        len(products),
		ResultsCount: texts.Products.ResultsCount(len(products)),
	}
	if len(products) == 0 {
		resp.NoResults = texts.Products.NoResults
	}
	respond(c, http.StatusOK, resp)
}

// GetProduct handles GET /api/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			fail(c, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("Error getting product %d: %v", id, err)
		fail(c, http.StatusInternalServerError, "failed to retrieve product")
		return
	}
	respond(c, http.StatusOK, product)
}

// categoryResponse pairs a category with its navigation label.
type categoryResponse struct {
	store.CategoryCount
	Label string `json:"label"`
}

// GetCategories handles GET /api/categories.
func (h *Handler) GetCategories(c *gin.Context) {
	counts, err := h.store.CountByCategory(c.Request.Context())
	if err != nil {
		log.Printf("Error counting categories: %v", err)
		fail(c, http.StatusInternalServerError, "failed to aggregate categories")
		return
	}

	texts, _ := lang.Texts(mw.LanguageFrom(c))
	resp := make([]categoryResponse, 0, len(counts))
	for _, cc := range counts {
		resp = append(resp, categoryResponse{CategoryCount: cc, Label: categoryLabel(texts.Navbar.Navigation, cc.Category)})
	}
	respond(c, http.StatusOK, resp)
}

func categoryLabel(nav lang.NavbarNavigation, c model.Category) string {
	switch c {
	case model.CategorySchoolSupplies:
		return nav.SchoolSupplies
	case model.CategoryChristmas:
		return nav.ChristmasSpecial
	case model.CategoryMousesKeyboards:
		return nav.MousesKeyboards
	case model.CategoryAudio:
		return nav.Audio
	case model.CategoryCables:
		return nav.Cables
	case model.CategoryStorage:
		return nav.Storage
	default:
		return nav.Others
	}
}
