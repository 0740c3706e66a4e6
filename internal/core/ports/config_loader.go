package ports

import "go.trai.ch/sdkcompat/internal/core/domain"

// ConfigLoader defines the interface for loading a build descriptor.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build descriptor at path and returns the build model.
	Load(path string) (*domain.Build, error)
}
