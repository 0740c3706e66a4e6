// Package selection picks the variant of a component that a consuming
// configuration resolves, following the matching rules of an attributes schema.
package selection

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Selector matches consumer attributes against candidate variants.
type Selector struct {
	schema *domain.AttributesSchema
}

// New creates a Selector over schema.
func New(schema *domain.AttributesSchema) *Selector {
	return &Selector{schema: schema}
}

// Select returns the single variant of candidates that best matches consumer.
//
// A candidate is compatible when, for every consumer attribute it also
// carries, the schema's compatibility rule accepts it (or the values are equal
// when no rule is registered). Compatible candidates are then narrowed by the
// disambiguation rules of the requested attributes in key order, followed by
// those of registered attributes the consumer did not request.
func (s *Selector) Select(consumer domain.Attributes, candidates []domain.Variant) (*domain.Variant, error) {
	keys := slices.Sorted(maps.Keys(consumer))

	remaining := make([]*domain.Variant, 0, len(candidates))
	for i := range candidates {
		ok, err := s.compatible(keys, consumer, &candidates[i])
		if err != nil {
			return nil, err
		}
		if ok {
			remaining = append(remaining, &candidates[i])
		}
	}

	if len(remaining) == 0 {
		return nil, zerr.With(domain.ErrNoMatchingVariant, "consumer", describe(consumer))
	}

	order := keys
	for _, key := range s.schema.Keys() {
		if _, requested := consumer[key]; !requested {
			order = append(order, key)
		}
	}

	for _, key := range order {
		if len(remaining) == 1 {
			break
		}
		narrowed, err := s.disambiguate(key, consumer[key], remaining)
		if err != nil {
			return nil, err
		}
		remaining = narrowed
	}

	if len(remaining) > 1 {
		names := make([]string, len(remaining))
		for i, v := range remaining {
			names[i] = v.Name
		}
		err := zerr.With(domain.ErrAmbiguousVariant, "consumer", describe(consumer))
		return nil, zerr.With(err, "candidates", strings.Join(names, ","))
	}

	return remaining[0], nil
}

func (s *Selector) compatible(keys []string, consumer domain.Attributes, v *domain.Variant) (bool, error) {
	for _, key := range keys {
		produced, ok := v.Attributes[key]
		if !ok {
			continue
		}

		st, registered := s.schema.Strategy(key)
		if !registered || st.Compatibility == nil {
			if produced != consumer[key] {
				return false, nil
			}
			continue
		}

		ok, err := st.Compatibility.Compatible(consumer[key], produced)
		if err != nil {
			return false, zerr.With(err, "attribute", key)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *Selector) disambiguate(key, requested string, remaining []*domain.Variant) ([]*domain.Variant, error) {
	st, ok := s.schema.Strategy(key)
	if !ok || st.Disambiguation == nil {
		return remaining, nil
	}

	var values []string
	for _, v := range remaining {
		if produced, has := v.Attributes[key]; has {
			values = append(values, produced)
		}
	}
	if len(values) == 0 {
		return remaining, nil
	}

	preferred, err := st.Disambiguation.Preferred(requested, values)
	if err != nil {
		return nil, zerr.With(err, "attribute", key)
	}

	out := make([]*domain.Variant, 0, len(remaining))
	for _, v := range remaining {
		if produced, has := v.Attributes[key]; has && slices.Contains(preferred, produced) {
			out = append(out, v)
		}
	}
	return out, nil
}

func describe(attrs domain.Attributes) string {
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, k+"="+attrs[k])
	}
	return strings.Join(parts, ",")
}
