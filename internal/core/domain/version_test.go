package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/core/domain"
)

func TestVersionLessThan(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2.6.5", "2.7.0", true},
		{"2.7.0", "2.7.0", false},
		{"2.7.1", "2.7.0", false},
		{"2.9.0", "2.10.0", true},
		{"2.10.0", "2.9.0", false},
		{"1.0-alpha", "1.0", true},
		{"1.0", "1.0-alpha", false},
		{"1.0-rc1", "1.0", true},
		{"1.0", "1.0.1", true},
		{"1.0-dev", "1.0-alpha", true},
		{"1.0-alpha", "1.0-rc", true},
		{"1.0-rc", "1.0-snapshot", true},
		{"1.0-snapshot", "1.0-final", true},
		{"1.0-final", "1.0-ga", true},
		{"1.0-ga", "1.0-release", true},
		{"1.0-release", "1.0-sp", true},
		{"1.0-RC", "1.0-snapshot", true},
		{"1.0-alpha", "1.0-beta", true},
		{"1.0-alpha2", "1.0-alpha10", true},
		{"1.0a", "1.0.1", true},
		{"2.7.0-rc01", "2.7.0", true},
		{"99999999999999999999", "100000000000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			got, err := domain.VersionLessThan(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersion_Malformed(t *testing.T) {
	for _, s := range []string{"", "1..0", ".1", "1.0.", "1.0 beta", "[1.0,2.0)", "1.0-"} {
		t.Run(s, func(t *testing.T) {
			_, err := domain.ParseVersion(s)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrMalformedVersion.Error())
		})
	}
}

func TestVersionCompare_StrictTotalOrder(t *testing.T) {
	samples := []string{
		"1", "1.0", "1-0", "1.0.0", "1.0.1", "1.0-alpha", "1.0-alpha1", "1.0-beta",
		"1.0-rc", "1.0-RC", "1.0-rc1", "1.0-snapshot", "1.0-final", "1.0-ga",
		"1.0-release", "1.0-sp", "1.0-dev", "1.1", "1.10", "1.9", "2.6.5", "2.7.0",
		"2.7.0-rc01", "2.7.1", "2.10.0", "01.0", "1.0a", "1.0+build",
	}

	parsed := make([]domain.Version, len(samples))
	for i, s := range samples {
		v, err := domain.ParseVersion(s)
		require.NoError(t, err, s)
		parsed[i] = v
	}

	for i, a := range parsed {
		assert.False(t, a.LessThan(a), "irreflexive: %s", a)
		for j, b := range parsed {
			ab, ba := a.Compare(b), b.Compare(a)
			assert.Equal(t, -ab, ba, "antisymmetric: %s vs %s", a, b)
			if i != j {
				assert.NotZero(t, ab, "total: %s vs %s", a, b)
			}
			for _, c := range parsed {
				if a.LessThan(b) && b.LessThan(c) {
					assert.True(t, a.LessThan(c), "transitive: %s < %s < %s", a, b, c)
				}
			}
		}
	}
}
