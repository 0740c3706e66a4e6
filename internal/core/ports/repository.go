package ports

import (
	"context"

	"go.trai.ch/sdkcompat/internal/core/domain"
)

// ComponentRepository provides the component metadata that rules run over.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type ComponentRepository interface {
	// Components returns every component found under root, sorted by coordinate.
	Components(ctx context.Context, root string) ([]*domain.ComponentMetadata, error)
}

// MetadataWriter persists rewritten component metadata.
type MetadataWriter interface {
	// Write stores meta below outDir.
	Write(ctx context.Context, outDir string, meta *domain.ComponentMetadata) error
}
