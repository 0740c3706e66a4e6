package rewrite

import (
	"slices"
	"sync"

	"go.trai.ch/sdkcompat/internal/core/domain"
)

// Handler is the per-build registry of metadata rules keyed by library coordinate.
// Every project of a build registers into the same Handler, possibly concurrently.
type Handler struct {
	mu    sync.RWMutex
	rules map[domain.LibraryCoordinate][]MetadataRule
}

// NewHandler creates an empty Handler.
func NewHandler() *Handler {
	return &Handler{rules: make(map[domain.LibraryCoordinate][]MetadataRule)}
}

// WithModule registers rule for coordinate. Registering a rule with the same
// ID twice is a no-op; the result reports whether the rule was added.
func (h *Handler) WithModule(coordinate domain.LibraryCoordinate, rule MetadataRule) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	existing := h.rules[coordinate]
	if slices.ContainsFunc(existing, func(r MetadataRule) bool { return r.ID() == rule.ID() }) {
		return false
	}
	h.rules[coordinate] = append(existing, rule)
	return true
}

// Rules returns the rules registered for coordinate in registration order.
func (h *Handler) Rules(coordinate domain.LibraryCoordinate) []MetadataRule {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.rules[coordinate])
}

// Len returns the total number of registered rules.
func (h *Handler) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, rs := range h.rules {
		n += len(rs)
	}
	return n
}
