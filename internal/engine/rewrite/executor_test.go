package rewrite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports/mocks"
	"go.trai.ch/sdkcompat/internal/engine/rewrite"
	"go.uber.org/mock/gomock"
)

func TestHandler_WithModule_Idempotent(t *testing.T) {
	h := rewrite.NewHandler()
	rule := rewrite.NewRule(rewrite.DefaultRuleConfig())

	assert.True(t, h.WithModule(rule.Coordinate(), rule))
	assert.False(t, h.WithModule(rule.Coordinate(), rewrite.NewRule(rewrite.DefaultRuleConfig())))
	assert.Equal(t, 1, h.Len())
	assert.Len(t, h.Rules(rewrite.DefaultCoordinate), 1)
	assert.Empty(t, h.Rules(domain.LibraryCoordinate{Group: "a", Artifact: "b"}))
}

func TestExecutor_Execute_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockRuleCache(ctrl)
	h := rewrite.NewHandler()
	rule := rewrite.NewRule(rewrite.DefaultRuleConfig())
	h.WithModule(rule.Coordinate(), rule)

	meta := workRuntime("2.6.5")
	key := rewrite.Fingerprint(rule.ID(), meta)

	cache.EXPECT().Get("root", key).Return(nil, nil).Times(1)
	cache.EXPECT().Put("root", gomock.Any()).DoAndReturn(func(_ string, entry domain.CachedRewrite) error {
		assert.Equal(t, key, entry.Key)
		assert.True(t, entry.Applied)
		assert.Len(t, entry.Variants, 3)
		return nil
	}).Times(1)

	records, err := rewrite.NewExecutor(h, cache, "root").Execute(meta)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Applied)
	assert.False(t, records[0].Cached)
	assert.Equal(t, "compileSdkVersion_below_31", records[0].Variant)
	assert.Len(t, meta.Variants, 3)
}

func TestExecutor_Execute_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockRuleCache(ctrl)
	h := rewrite.NewHandler()
	rule := rewrite.NewRule(rewrite.DefaultRuleConfig())
	h.WithModule(rule.Coordinate(), rule)

	expected := workRuntime("2.6.5")
	_, err := rule.Execute(expected)
	require.NoError(t, err)

	meta := workRuntime("2.6.5")
	key := rewrite.Fingerprint(rule.ID(), meta)
	cache.EXPECT().Get("root", key).Return(&domain.CachedRewrite{
		Key:      key,
		Applied:  true,
		Floor:    31,
		Variant:  "compileSdkVersion_below_31",
		Variants: expected.Variants,
	}, nil).Times(1)

	records, err := rewrite.NewExecutor(h, cache, "root").Execute(meta)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Cached)
	assert.Equal(t, expected.Variants, meta.Variants)
}

func TestExecutor_Execute_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockRuleCache(ctrl)
	h := rewrite.NewHandler()
	rule := rewrite.NewRule(rewrite.DefaultRuleConfig())
	h.WithModule(rule.Coordinate(), rule)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))

	_, err := rewrite.NewExecutor(h, cache, "root").Execute(workRuntime("2.6.5"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}

func TestExecutor_Execute_NoCache(t *testing.T) {
	h := rewrite.NewHandler()
	rule := rewrite.NewRule(rewrite.DefaultRuleConfig())
	h.WithModule(rule.Coordinate(), rule)

	records, err := rewrite.NewExecutor(h, nil, "").Execute(workRuntime("2.7.0"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Applied)
}

func TestFingerprint_Stable(t *testing.T) {
	a := workRuntime("2.6.5")
	b := workRuntime("2.6.5")
	assert.Equal(t, rewrite.Fingerprint("r", a), rewrite.Fingerprint("r", b))
	assert.NotEqual(t, rewrite.Fingerprint("r", a), rewrite.Fingerprint("other", a))
	assert.NotEqual(t, rewrite.Fingerprint("r", a), rewrite.Fingerprint("r", workRuntime("2.6.4")))
}
