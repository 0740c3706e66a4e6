package ports

import "go.trai.ch/sdkcompat/internal/core/domain"

// RuleCache memoizes rule results keyed by a fingerprint of rule and input metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RuleCache interface {
	// Get retrieves a cached result from the cache of the build at root.
	// Returns nil, nil if not found.
	Get(root, key string) (*domain.CachedRewrite, error)

	// Put stores a result in the cache of the build at root.
	Put(root string, entry domain.CachedRewrite) error
}
