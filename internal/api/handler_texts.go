package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"clipclic-storefront-backend/internal/lang"
	"clipclic-storefront-backend/internal/model"
	"clipclic-storefront-backend/internal/mw"
	"clipclic-storefront-backend/internal/parse"
)

// textsResponse is the text tree plus the language it was rendered for.
type textsResponse struct {
	Language model.AppLanguage `json:"language"`
	Texts    lang.AppTexts     `json:"texts"`
}

// GetLanguages handles GET /api/languages.
func GetLanguages(c *gin.Context) {
	respond(c, http.StatusOK, model.Languages())
}

// GetServices handles GET /api/services.
func GetServices(c *gin.Context) {
	respond(c, http.StatusOK, model.ServiceKeys())
}

// GetNegotiatedTexts handles GET /api/texts, using the language chosen by
// the Language middleware.
func GetNegotiatedTexts(c *gin.Context) {
	writeTexts(c, mw.LanguageFrom(c))
}

// GetTexts handles GET /api/texts/:lang.
func GetTexts(c *gin.Context) {
	l, ok := pathLanguage(c)
	if !ok {
		return
	}
	writeTexts(c, l)
}

func writeTexts(c *gin.Context, l model.AppLanguage) {
	texts, err := lang.Texts(l)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	respond(c, http.StatusOK, textsResponse{Language: l, Texts: texts})
}

// GetTextKey handles GET /api/texts/:lang/keys/*path. A leaf path returns
// its string; an inner path returns every leaf beneath it.
func GetTextKey(c *gin.Context) {
	l, ok := pathLanguage(c)
	if !ok {
		return
	}
	path := strings.TrimPrefix(c.Param("path"), "/")

	value, err := lang.Lookup(l, path)
	switch {
	case err == nil:
		respond(c, http.StatusOK, gin.H{"key": path, "value": value})
		return
	case errors.Is(err, parse.ErrInvalidKeyPath):
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	subtree, err := lang.Subtree(l, path)
	if err != nil && !errors.Is(err, lang.ErrUnknownKey) {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	derived, _ := lang.DerivedUnder(path)
	if len(subtree) == 0 && len(derived) == 0 {
		fail(c, http.StatusNotFound, err.Error())
		return
	}
	if subtree == nil {
		subtree = make(map[string]string, len(derived))
	}
	// Derived keys depend on a count, so they point at their endpoint.
	for _, key := range derived {
		subtree[key] = "/api/texts/" + string(l) + "/results-count?count={count}"
	}
	respond(c, http.StatusOK, gin.H{"key": path, "values": subtree})
}

// GetResultsCount handles GET /api/texts/:lang/results-count?count=N.
func GetResultsCount(c *gin.Context) {
	l, ok := pathLanguage(c)
	if !ok {
		return
	}
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count < 0 {
		fail(c, http.StatusBadRequest, "count must be a non-negative integer")
		return
	}
	texts, _ := lang.Texts(l)
	respond(c, http.StatusOK, gin.H{"count": count, "text": texts.Products.ResultsCount(count)})
}

func pathLanguage(c *gin.Context) (model.AppLanguage, bool) {
	l, err := model.ParseAppLanguage(c.Param("lang"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return l, true
}
