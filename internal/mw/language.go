package mw

import (
	"github.com/gin-gonic/gin"

	"clipclic-storefront-backend/internal/lang"
	"clipclic-storefront-backend/internal/model"
)

const (
	// LangParam is the query parameter that overrides Accept-Language.
	LangParam = "lang"

	languageKey = "storefront.language"
)

// Language resolves the request language from ?lang=, then the
// Accept-Language header, then fallback, and stores it on the context.
// An unsupported ?lang= value is ignored rather than rejected.
func Language(fallback model.AppLanguage) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := lang.Negotiate(c.GetHeader("Accept-Language"), fallback)
		if raw := c.Query(LangParam); raw != "" {
			if parsed, err := model.ParseAppLanguage(raw); err == nil {
				l = parsed
			}
		}

		c.Set(languageKey, l)
		c.Header("Content-Language", string(l))
		c.Header("Vary", "Accept-Language")
		c.Next()
	}
}

// LanguageFrom returns the language stored by Language, or the default
// language when the middleware did not run.
func LanguageFrom(c *gin.Context) model.AppLanguage {
	if v, ok := c.Get(languageKey); ok {
		if l, ok := v.(model.AppLanguage); ok {
			return l
		}
	}
	return model.DefaultLanguage
}
