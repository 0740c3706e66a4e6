package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/core/domain"
)

func TestParsePlatformVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.PlatformVersion
		wantErr bool
	}{
		{in: "android-31", want: 31},
		{in: "android-30", want: 30},
		{in: "android-tv-33", want: 33},
		{in: "android-", wantErr: true},
		{in: "-31", wantErr: true},
		{in: "31", wantErr: true},
		{in: "android-S", wantErr: true},
		{in: "android-+31", wantErr: true},
		{in: "android-3 1", wantErr: true},
		{in: "android-٣١", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParsePlatformVersion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrMalformedPlatformVersion.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoordinates(t *testing.T) {
	lib, err := domain.ParseLibraryCoordinate("androidx.work:work-runtime")
	require.NoError(t, err)
	assert.Equal(t, "androidx.work", lib.Group)
	assert.Equal(t, "work-runtime", lib.Artifact)

	mod, err := domain.ParseModuleCoordinate("androidx.work:work-runtime:2.6.0")
	require.NoError(t, err)
	assert.Equal(t, lib, mod.LibraryCoordinate)
	assert.Equal(t, "2.6.0", mod.Version)
	assert.Equal(t, "androidx.work:work-runtime:2.6.0", mod.String())

	for _, bad := range []string{"", "group", ":artifact", "group:", "a:b:c"} {
		_, err := domain.ParseLibraryCoordinate(bad)
		assert.Error(t, err, bad)
	}
	for _, bad := range []string{"", "a:b", "a:b:", ":b:1"} {
		_, err := domain.ParseModuleCoordinate(bad)
		assert.Error(t, err, bad)
	}
}

func TestThresholdTable(t *testing.T) {
	table, err := domain.NewThresholdTable(domain.Threshold{Trigger: "2.7.0", Floor: 31})
	require.NoError(t, err)

	v, _ := domain.ParseVersion("2.6.5")
	th, ok := table.Lookup(v)
	require.True(t, ok)
	assert.Equal(t, 31, th.Floor)

	v, _ = domain.ParseVersion("2.7.0")
	_, ok = table.Lookup(v)
	assert.False(t, ok)

	err = table.Add(domain.Threshold{Trigger: "2.6.0", Floor: 30})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrThresholdOrder.Error())

	err = table.Add(domain.Threshold{Trigger: "2.8.0", Floor: 0})
	require.Error(t, err)

	require.NoError(t, table.Add(domain.Threshold{Trigger: "2.8.0", Floor: 33}))
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []domain.Threshold{{Trigger: "2.7.0", Floor: 31}, {Trigger: "2.8.0", Floor: 33}}, table.Thresholds())
}

func TestAttributesSchema_RegisterOnce(t *testing.T) {
	s := domain.NewAttributesSchema()
	first := domain.MatchingStrategy{Compatibility: domain.OrderedIntCompatibility{}}

	assert.True(t, s.Register("k", first))
	assert.False(t, s.Register("k", domain.MatchingStrategy{}))

	got, ok := s.Strategy("k")
	require.True(t, ok)
	assert.Equal(t, first, got)
	assert.Equal(t, []string{"k"}, s.Keys())
}

func TestOrderedIntCompatibility(t *testing.T) {
	rule := domain.OrderedIntCompatibility{}

	ok, err := rule.Compatible("31", "31")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rule.Compatible("31", "0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rule.Compatible("30", "31")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = rule.Compatible("x", "31")
	assert.Error(t, err)
}

func TestPickLastInt(t *testing.T) {
	got, err := domain.PickLastInt{}.Preferred("31", []string{"0", "31", "30", "31"})
	require.NoError(t, err)
	assert.Equal(t, []string{"31", "31"}, got)

	got, err = domain.PickLastInt{}.Preferred("31", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComponentMetadata_AddVariantReplaces(t *testing.T) {
	meta := &domain.ComponentMetadata{}
	meta.AddVariant("v", func(v *domain.Variant) { v.Attributes["a"] = "1" })
	meta.AddVariant("v", func(v *domain.Variant) { v.Attributes["a"] = "2" })

	require.Len(t, meta.Variants, 1)
	assert.Equal(t, "2", meta.Variants[0].Attributes["a"])

	clone := meta.Clone()
	clone.Variants[0].Attributes["a"] = "3"
	assert.Equal(t, "2", meta.Variants[0].Attributes["a"])
}

func TestAttributes_Int(t *testing.T) {
	attrs := domain.Attributes{}
	attrs.SetInt("n", 31)

	n, ok, err := attrs.Int("n")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 31, n)

	_, ok, err = attrs.Int("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	attrs["bad"] = "x"
	_, _, err = attrs.Int("bad")
	assert.ErrorContains(t, err, domain.ErrAttributeNotInteger.Error())
}
