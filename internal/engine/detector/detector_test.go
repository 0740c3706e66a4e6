package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports/mocks"
	"go.trai.ch/sdkcompat/internal/engine/detector"
	"go.uber.org/mock/gomock"
)

func TestDetect_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := detector.New(mocks.NewMockLogger(ctrl))
	p := &domain.Project{Name: "app", Path: ":app", Android: &domain.AndroidExtension{CompileSdkVersion: "android-31"}}

	level, ok, err := d.Detect(p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PlatformVersion(31), level)
}

func TestDetect_NoExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	d := detector.New(logger)
	p := &domain.Project{Name: "lib", Path: ":lib"}

	_, ok, err := d.Detect(p)
	require.NoError(t, err)
	assert.False(t, ok)

	// Memoized: the warning is not repeated.
	_, ok, err = d.Detect(p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetect_MissingCompileSdk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	d := detector.New(logger)
	_, ok, err := d.Detect(&domain.Project{Name: "app", Path: ":app", Android: &domain.AndroidExtension{}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetect_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := detector.New(mocks.NewMockLogger(ctrl))
	p := &domain.Project{Name: "app", Path: ":app", Android: &domain.AndroidExtension{CompileSdkVersion: "android-S"}}

	_, ok, err := d.Detect(p)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorContains(t, err, domain.ErrMalformedPlatformVersion.Error())
}
