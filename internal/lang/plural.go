package lang

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"clipclic-storefront-backend/internal/model"
)

const resultsCountKey = "products.resultsCount"

// printers use a private catalog so nothing is registered on the
// x/text default catalog.
var printers = mustBuildPrinters()

func mustBuildPrinters() map[model.AppLanguage]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.Spanish))

	entries := []struct {
		lang     model.AppLanguage
		tag      language.Tag
		singular string
		plural   string
	}{
		{model.LanguageSpanish, language.Spanish, "%[2]s producto encontrado", "%[2]s productos encontrados"},
		{model.LanguageEnglish, language.English, "%[2]s product found", "%[2]s products found"},
	}

	out := make(map[model.AppLanguage]*message.Printer, len(entries))
	for _, e := range entries {
		// Argument 1 selects the form, argument 2 is the count as plain
		// digits; the printer would otherwise group thousands per locale.
		// "=1" is an exact match, so zero takes the plural branch.
		msg := plural.Selectf(1, "%d",
			"=1", e.singular,
			"other", e.plural,
		)
		if err := b.Set(e.tag, resultsCountKey, msg); err != nil {
			panic(err)
		}
		out[e.lang] = message.NewPrinter(e.tag, message.Catalog(b))
	}
	return out
}

// FormatResultsCount renders the pluralized product counter for lang.
// Negative counts are treated as zero and an unsupported language
// falls back to Spanish, so the function never fails.
func FormatResultsCount(lang model.AppLanguage, count int) string {
	if count < 0 {
		count = 0
	}
	p, ok := printers[lang]
	if !ok {
		p = printers[model.DefaultLanguage]
	}
	return p.Sprintf(message.Key(resultsCountKey, "%[2]s productos encontrados"), count, strconv.Itoa(count))
}
