package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PlatformVersion is the compile SDK level a project declares, e.g. 31.
type PlatformVersion int

// ParsePlatformVersion extracts the level from a "<prefix>-<integer>" string
// such as "android-31". The split happens on the last '-'.
func ParsePlatformVersion(s string) (PlatformVersion, error) {
	sep := strings.LastIndex(s, "-")
	if sep <= 0 || sep == len(s)-1 {
		return 0, zerr.With(ErrMalformedPlatformVersion, "compile_sdk_version", s)
	}
	digits := s[sep+1:]
	if strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, zerr.With(ErrMalformedPlatformVersion, "compile_sdk_version", s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, zerr.With(ErrMalformedPlatformVersion, "compile_sdk_version", s)
	}
	return PlatformVersion(n), nil
}

// Int returns the level as an int.
func (p PlatformVersion) Int() int {
	return int(p)
}
