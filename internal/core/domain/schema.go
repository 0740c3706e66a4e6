package domain

import (
	"slices"
	"strconv"
	"sync"

	"go.trai.ch/zerr"
)

// CompatibilityRule decides whether a producer value satisfies a consumer request.
type CompatibilityRule interface {
	Compatible(consumer, producer string) (bool, error)
}

// DisambiguationRule narrows a set of compatible producer values to the preferred ones.
type DisambiguationRule interface {
	Preferred(consumer string, values []string) ([]string, error)
}

// MatchingStrategy holds the rules of one attribute. A nil Compatibility
// means exact equality; a nil Disambiguation keeps every candidate.
type MatchingStrategy struct {
	Compatibility  CompatibilityRule
	Disambiguation DisambiguationRule
}

// AttributesSchema is the build wide registry of attribute matching rules.
// It is safe for concurrent use.
type AttributesSchema struct {
	mu         sync.RWMutex
	strategies map[string]MatchingStrategy
}

// NewAttributesSchema creates an empty schema.
func NewAttributesSchema() *AttributesSchema {
	return &AttributesSchema{strategies: make(map[string]MatchingStrategy)}
}

// Register installs a strategy for key unless one is already present.
// It reports whether this call installed it.
func (s *AttributesSchema) Register(key string, strategy MatchingStrategy) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.strategies[key]; ok {
		return false
	}
	s.strategies[key] = strategy
	return true
}

// Strategy returns the strategy registered for key.
func (s *AttributesSchema) Strategy(key string) (MatchingStrategy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.strategies[key]
	return st, ok
}

// Keys returns the registered attribute keys in sorted order.
func (s *AttributesSchema) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.strategies))
	for k := range s.strategies {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// OrderedIntCompatibility accepts producer values not greater than the consumer value.
type OrderedIntCompatibility struct{}

// Compatible implements CompatibilityRule.
func (OrderedIntCompatibility) Compatible(consumer, producer string) (bool, error) {
	c, err := atoiAttr(consumer)
	if err != nil {
		return false, err
	}
	p, err := atoiAttr(producer)
	if err != nil {
		return false, err
	}
	return p <= c, nil
}

// PickLastInt prefers the numerically greatest value.
type PickLastInt struct{}

// Preferred implements DisambiguationRule.
func (PickLastInt) Preferred(_ string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	best := 0
	var out []string
	for i, v := range values {
		n, err := atoiAttr(v)
		if err != nil {
			return nil, err
		}
		switch {
		case i == 0 || n > best:
			best = n
			out = []string{v}
		case n == best:
			out = append(out, v)
		}
	}
	return out, nil
}

func atoiAttr(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, zerr.With(ErrAttributeNotInteger, "value", s)
	}
	return n, nil
}
