package rewrite

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sdkcompat/internal/core/domain"
)

// Fingerprint hashes a rule identity together with the metadata it would run
// on. Equal fingerprints mean the rule would produce the same result.
func Fingerprint(ruleID string, meta *domain.ComponentMetadata) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(ruleID)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(meta.ID.String())
	_, _ = hasher.Write([]byte{0})

	for _, v := range meta.Variants {
		_, _ = hasher.WriteString(v.Name)
		_, _ = hasher.Write([]byte{0})

		for _, k := range slices.Sorted(maps.Keys(v.Attributes)) {
			_, _ = hasher.WriteString(k)
			_, _ = hasher.Write([]byte{'='})
			_, _ = hasher.WriteString(v.Attributes[k])
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator

		for _, d := range v.Dependencies {
			_, _ = hasher.WriteString(d.Coordinate.String())
			_, _ = hasher.Write([]byte{0})
			_, _ = hasher.WriteString(d.Reason)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
