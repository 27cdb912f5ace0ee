package lang

import (
	"strings"

	"golang.org/x/text/language"

	"clipclic-storefront-backend/internal/model"
)

// The first tag is the matcher's default.
var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

// Negotiate picks the supported language that best matches an
// Accept-Language header value. fallback is returned when the header is
// empty, malformed, or names no supported language.
func Negotiate(acceptLanguage string, fallback model.AppLanguage) model.AppLanguage {
	accept := strings.TrimSpace(acceptLanguage)
	if accept == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	base, _ := tag.Base()
	l, err := model.ParseAppLanguage(base.String())
	if err != nil {
		return fallback
	}
	return l
}
