package lang

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"clipclic-storefront-backend/internal/model"
	"clipclic-storefront-backend/internal/parse"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownKey          = errors.New("unknown text key")
	ErrIncompleteTexts     = errors.New("incomplete text tree")
)

// optionalKeys may legitimately hold an empty string.
var optionalKeys = map[string]bool{
	"navbar.brand2": true,
}

// DerivedKeys are computed per call instead of stored in the tree.
var DerivedKeys = []string{resultsCountKey}

var tables = map[model.AppLanguage]AppTexts{
	model.LanguageSpanish: spanishTexts,
	model.LanguageEnglish: englishTexts,
}

// Spanish returns the Spanish text tree.
func Spanish() AppTexts { return spanishTexts }

// English returns the English text tree.
func English() AppTexts { return englishTexts }

// Texts returns the text tree for l.
func Texts(l model.AppLanguage) (AppTexts, error) {
	t, ok := tables[l]
	if !ok {
		return AppTexts{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, l)
	}
	return t, nil
}

// Lookup resolves a dotted key path to a single string for l.
func Lookup(l model.AppLanguage, path string) (string, error) {
	t, err := Texts(l)
	if err != nil {
		return "", err
	}
	kp, err := parse.ParseKeyPath(path)
	if err != nil {
		return "", err
	}
	v, ok := Flatten(t)[kp.String()]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, kp.String())
	}
	return v, nil
}

// Subtree returns every leaf under path, keyed by full path. A path naming
// a leaf returns a single entry.
func Subtree(l model.AppLanguage, path string) (map[string]string, error) {
	t, err := Texts(l)
	if err != nil {
		return nil, err
	}
	prefix, err := parse.ParseKeyPath(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string)
	for key, value := range Flatten(t) {
		if parse.MustParseKeyPath(key).HasPrefix(prefix) {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, prefix.String())
	}
	return out, nil
}

// DerivedUnder returns the derived keys at or beneath path.
func DerivedUnder(path string) ([]string, error) {
	prefix, err := parse.ParseKeyPath(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, key := range DerivedKeys {
		if parse.MustParseKeyPath(key).HasPrefix(prefix) {
			out = append(out, key)
		}
	}
	return out, nil
}

// Flatten maps every static leaf of t to its dotted key path.
func Flatten(t AppTexts) map[string]string {
	out := make(map[string]string)
	flatten("", reflect.ValueOf(t), out)
	return out
}

func flatten(prefix string, v reflect.Value, out map[string]string) {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			out[key] = fv.String()
		case reflect.Struct:
			flatten(key, fv, out)
		}
	}
}

// Keys returns the sorted static key paths of t.
func Keys(t AppTexts) []string {
	flat := Flatten(t)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate reports every leaf that is empty and not listed as optional.
func (t AppTexts) Validate() error {
	flat := Flatten(t)
	var missing []string
	for _, key := range Keys(t) {
		if optionalKeys[key] {
			continue
		}
		if strings.TrimSpace(flat[key]) == "" {
			missing = append(missing, key)
		}
	}
	if t.Products.language == "" {
		missing = append(missing, resultsCountKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: empty keys %s", ErrIncompleteTexts, strings.Join(missing, ", "))
	}
	return nil
}

// Parity reports keys whose values are empty in one tree but set in the
// other, so no locale silently lacks copy another locale provides.
func Parity(a, b AppTexts) error {
	fa, fb := Flatten(a), Flatten(b)
	var diff []string
	for _, key := range Keys(a) {
		if optionalKeys[key] {
			continue
		}
		if (fa[key] == "") != (fb[key] == "") {
			diff = append(diff, key)
		}
	}
	if len(diff) > 0 {
		return fmt.Errorf("%w: keys differ between locales: %s", ErrIncompleteTexts, strings.Join(diff, ", "))
	}
	return nil
}
