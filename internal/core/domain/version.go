package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// qualifierRank orders well-known qualifiers. Unknown qualifiers rank 0 and
// compare lexicographically among themselves.
var qualifierRank = map[string]int{
	"dev":      -1,
	"rc":       1,
	"snapshot": 2,
	"final":    3,
	"ga":       4,
	"release":  5,
	"sp":       6,
}

// versionPart is one segment of a version after splitting on separators and
// digit/letter boundaries.
type versionPart struct {
	text    string
	numeric bool
}

// Version is a parsed build version such as "2.7.0" or "1.0-rc2".
type Version struct {
	raw   string
	parts []versionPart
}

// ParseVersion splits a version string into ordered parts.
// Separators are '.', '-', '_' and '+'; a switch between digits and letters
// also starts a new part. Empty strings, empty parts and characters outside
// [A-Za-z0-9._+-] are rejected.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, zerr.With(ErrMalformedVersion, "version", s)
	}

	parts := make([]versionPart, 0, 4)
	start := 0
	flush := func(end int) bool {
		if end == start {
			return false
		}
		text := s[start:end]
		parts = append(parts, versionPart{text: text, numeric: isDigit(text[0])})
		return true
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' || c == '-' || c == '_' || c == '+':
			if !flush(i) {
				return Version{}, zerr.With(ErrMalformedVersion, "version", s)
			}
			start = i + 1
		case isDigit(c) || isLetter(c):
			if i > start && isDigit(s[i-1]) != isDigit(c) {
				flush(i)
				start = i
			}
		default:
			return Version{}, zerr.With(ErrMalformedVersion, "version", s)
		}
	}
	if !flush(len(s)) {
		return Version{}, zerr.With(ErrMalformedVersion, "version", s)
	}

	return Version{raw: s, parts: parts}, nil
}

// String returns the version as it was written.
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v Version) Compare(other Version) int {
	n := min(len(v.parts), len(other.parts))
	for i := range n {
		if c := comparePart(v.parts[i], other.parts[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(v.parts) > n:
		// 1.0.1 > 1.0 but 1.0-alpha < 1.0
		if v.parts[n].numeric {
			return 1
		}
		return -1
	case len(other.parts) > n:
		if other.parts[n].numeric {
			return -1
		}
		return 1
	}

	// Same parts written differently ("1.0" and "1-0"): fall back to the raw
	// text so distinct strings never compare equal.
	return strings.Compare(v.raw, other.raw)
}

// LessThan reports whether v sorts strictly before other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// CompareVersions parses and compares two version strings.
func CompareVersions(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// VersionLessThan reports whether version a sorts strictly before version b.
func VersionLessThan(a, b string) (bool, error) {
	c, err := CompareVersions(a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

func comparePart(a, b versionPart) int {
	switch {
	case a.numeric && b.numeric:
		return compareNumeric(a.text, b.text)
	case a.numeric:
		return 1
	case b.numeric:
		return -1
	}

	ra, rb := qualifierRank[strings.ToLower(a.text)], qualifierRank[strings.ToLower(b.text)]
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if ra != 0 {
		return 0
	}
	return strings.Compare(a.text, b.text)
}

// compareNumeric compares digit strings of arbitrary length without parsing
// them into fixed-size integers.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
