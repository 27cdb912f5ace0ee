package api

import (
	"github.com/gin-gonic/gin"

	"clipclic-storefront-backend/internal/model"
	"clipclic-storefront-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// respond writes data wrapped in the response envelope.
func respond[T any](c *gin.Context, status int, data T) {
	c.JSON(status, model.NewApiResponse(data, status))
}

// fail aborts the request with an error envelope.
func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, model.NewApiResponse(gin.H{"error": message}, status))
}
