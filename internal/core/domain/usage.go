package domain

// UsageCompatibility accepts an exact usage match, and runtime variants for
// API consumers since a runtime variant exposes everything the API does.
type UsageCompatibility struct{}

// Compatible implements CompatibilityRule.
func (UsageCompatibility) Compatible(consumer, producer string) (bool, error) {
	if consumer == producer {
		return true, nil
	}
	return consumer == UsageJavaAPI && producer == UsageJavaRuntime, nil
}

// UsagePreferExact prefers producers whose usage equals the request.
type UsagePreferExact struct{}

// Preferred implements DisambiguationRule.
func (UsagePreferExact) Preferred(consumer string, values []string) ([]string, error) {
	var exact []string
	for _, v := range values {
		if v == consumer {
			exact = append(exact, v)
		}
	}
	if len(exact) == 0 {
		return values, nil
	}
	return exact, nil
}

// RegisterJavaUsage installs the usage attribute rules on s.
func RegisterJavaUsage(s *AttributesSchema) bool {
	return s.Register(UsageAttribute, MatchingStrategy{
		Compatibility:  UsageCompatibility{},
		Disambiguation: UsagePreferExact{},
	})
}
