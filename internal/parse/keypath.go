package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var segmentRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ErrInvalidKeyPath is wrapped by every ParseKeyPath failure.
var ErrInvalidKeyPath = errors.New("invalid key path")

// KeyPath is a dotted locale key path split into its segments.
type KeyPath struct {
	Segments []string
}

// ParseKeyPath parses a dotted key path such as "navbar.navigation.home".
// A leading or trailing slash is tolerated so raw URL wildcards can be passed in.
func ParseKeyPath(raw string) (KeyPath, error) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "/")
	if s == "" {
		return KeyPath{}, fmt.Errorf("%w: empty path", ErrInvalidKeyPath)
	}

	parts := strings.Split(s, ".")
	for i, part := range parts {
		if !segmentRe.MatchString(part) {
			return KeyPath{}, fmt.Errorf("%w: segment %d (%q) of %q", ErrInvalidKeyPath, i, part, raw)
		}
	}
	return KeyPath{Segments: parts}, nil
}

// MustParseKeyPath is like ParseKeyPath but panics on error.
func MustParseKeyPath(raw string) KeyPath {
	p, err := ParseKeyPath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p KeyPath) String() string {
	return strings.Join(p.Segments, ".")
}

// Leaf returns the last segment.
func (p KeyPath) Leaf() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// Parent returns the path without its last segment.
func (p KeyPath) Parent() KeyPath {
	if len(p.Segments) <= 1 {
		return KeyPath{}
	}
	return KeyPath{Segments: append([]string(nil), p.Segments[:len(p.Segments)-1]...)}
}

// HasPrefix reports whether prefix covers the leading segments of p.
func (p KeyPath) HasPrefix(prefix KeyPath) bool {
	if len(prefix.Segments) > len(p.Segments) {
		return false
	}
	for i, seg := range prefix.Segments {
		if p.Segments[i] != seg {
			return false
		}
	}
	return true
}
