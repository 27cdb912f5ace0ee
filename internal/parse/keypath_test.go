package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyPath(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  []string
		expectErr bool
	}{
		{
			name:     "Nested leaf",
			raw:      "navbar.navigation.home",
			expected: []string{"navbar", "navigation", "home"},
		},
		{
			name:     "Single segment",
			raw:      "footer",
			expected: []string{"footer"},
		},
		{
			name:     "Surrounding spaces",
			raw:      "  products.outOfStock ",
			expected: []string{"products", "outOfStock"},
		},
		{
			name:     "URL wildcard form",
			raw:      "/home.heroSection.buttons.getStarted",
			expected: []string{"home", "heroSection", "buttons", "getStarted"},
		},
		{
			name:      "Empty",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "Empty segment",
			raw:       "navbar..home",
			expectErr: true,
		},
		{
			name:      "Trailing dot",
			raw:       "navbar.",
			expectErr: true,
		},
		{
			name:      "Segment starting with digit",
			raw:       "navbar.1home",
			expectErr: true,
		},
		{
			name:      "Dash in segment",
			raw:       "mouses-teclados",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseKeyPath(tc.raw)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrInvalidKeyPath))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, parsed.Segments)
			}
		})
	}
}

func TestKeyPath_Helpers(t *testing.T) {
	p := MustParseKeyPath("footer.contact.email")
	assert.Equal(t, "footer.contact.email", p.String())
	assert.Equal(t, "email", p.Leaf())
	assert.Equal(t, "footer.contact", p.Parent().String())
	assert.Equal(t, "", MustParseKeyPath("footer").Parent().String())

	assert.True(t, p.HasPrefix(MustParseKeyPath("footer")))
	assert.True(t, p.HasPrefix(p))
	assert.False(t, p.HasPrefix(MustParseKeyPath("navbar")))
	assert.False(t, MustParseKeyPath("footer").HasPrefix(p))

	assert.Panics(t, func() { MustParseKeyPath("..") })
}
