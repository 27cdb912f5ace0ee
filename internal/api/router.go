package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"clipclic-storefront-backend/config"
	"clipclic-storefront-backend/internal/mw"
	"clipclic-storefront-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(mw.NewClientRateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))

	// Text trees never change at runtime, so they are cached for the configured TTL.
	cacheStore := cache.New(cfg.Server.CacheTTL, 2*cfg.Server.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.Server.CacheTTL)

	r.GET("/healthz", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{"time": time.Now().UTC()})
	})

	api := r.Group("/api")
	api.Use(rateLimiter, mw.Language(cfg.Locale.Default))
	{
		api.GET("/languages", GetLanguages)
		api.GET("/services", GetServices)

		api.GET("/texts", caching, GetNegotiatedTexts)
		api.GET("/texts/:lang", caching, GetTexts)
		api.GET("/texts/:lang/keys/*path", caching, GetTextKey)
		api.GET("/texts/:lang/results-count", GetResultsCount)

		api.GET("/categories", handler.GetCategories)
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "route not found")
	})

	return r
}
