package rewrite

import (
	"slices"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor runs the rules registered in a Handler against component metadata,
// memoizing results in the RuleCache of the build at root.
type Executor struct {
	handler *Handler
	cache   ports.RuleCache
	root    string
}

// NewExecutor creates an Executor. A nil cache disables memoization.
func NewExecutor(handler *Handler, cache ports.RuleCache, root string) *Executor {
	return &Executor{handler: handler, cache: cache, root: root}
}

// Execute applies every matching rule to meta in registration order and
// returns one record per rule.
func (e *Executor) Execute(meta *domain.ComponentMetadata) ([]domain.RewriteRecord, error) {
	rules := e.handler.Rules(meta.ID.LibraryCoordinate)
	records := make([]domain.RewriteRecord, 0, len(rules))

	for _, rule := range rules {
		key := Fingerprint(rule.ID(), meta)

		if e.cache != nil {
			hit, err := e.cache.Get(e.root, key)
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
			}
			if hit != nil {
				if hit.Applied {
					meta.Variants = cloneVariants(hit.Variants)
				}
				records = append(records, recordFrom(meta, rule, hit.Applied, hit.Floor, hit.Variant, true))
				continue
			}
		}

		out, err := rule.Execute(meta)
		if err != nil {
			return nil, zerr.With(err, "rule", rule.ID())
		}
		records = append(records, recordFrom(meta, rule, out.Applied, out.Floor, out.Variant, false))

		if e.cache != nil {
			entry := domain.CachedRewrite{
				Key:       key,
				Component: meta.ID.String(),
				Rule:      rule.ID(),
				Applied:   out.Applied,
				Floor:     out.Floor,
				Variant:   out.Variant,
			}
			if out.Applied {
				entry.Variants = cloneVariants(meta.Variants)
			}
			if err := e.cache.Put(e.root, entry); err != nil {
				return nil, zerr.Wrap(err, "failed to store rule result")
			}
		}
	}

	return records, nil
}

func recordFrom(
	meta *domain.ComponentMetadata,
	rule MetadataRule,
	applied bool,
	floor int,
	variant string,
	cached bool,
) domain.RewriteRecord {
	return domain.RewriteRecord{
		Component: meta.ID.String(),
		Rule:      rule.ID(),
		Applied:   applied,
		Floor:     floor,
		Variant:   variant,
		Cached:    cached,
	}
}

func cloneVariants(in []domain.Variant) []domain.Variant {
	out := slices.Clone(in)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}
