// Package rewrite implements the component metadata rule that injects a
// downgrade variant for consumers whose compile SDK is too low.
package rewrite

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/zerr"
)

// fallbackPrefix starts the name of every generated fallback variant.
const fallbackPrefix = domain.CompileSdkAttributeName + "_below_"

var (
	// DefaultCoordinate is the library family watched when no rule is configured.
	DefaultCoordinate = domain.LibraryCoordinate{Group: "androidx.work", Artifact: "work-runtime"}

	// DefaultSubstitute is the last release that still supports compile SDK 30.
	DefaultSubstitute = domain.ModuleCoordinate{LibraryCoordinate: DefaultCoordinate, Version: "2.6.0"}

	// DefaultThresholds lists the releases that raised the compile SDK requirement.
	DefaultThresholds = []domain.Threshold{
		{Trigger: "2.7.0", Floor: 31},
	}
)

// Outcome reports what Execute did.
type Outcome struct {
	Applied bool
	Floor   int
	Variant string
}

// MetadataRule mutates component metadata before variant selection.
type MetadataRule interface {
	// ID identifies the rule and its parameters. Equal IDs mean equal behaviour.
	ID() string
	Execute(meta *domain.ComponentMetadata) (Outcome, error)
}

var _ MetadataRule = (*Rule)(nil)

// Rule adds a fallback variant with a downgraded dependency to components
// that predate a compile SDK requirement. It holds no mutable state.
type Rule struct {
	coordinate    domain.LibraryCoordinate
	substitute    domain.ModuleCoordinate
	table         domain.ThresholdTable
	floorOverride int
	id            string
}

// NewRule creates a rule from its configuration.
func NewRule(cfg domain.RuleConfig) *Rule {
	r := &Rule{
		coordinate:    cfg.Coordinate,
		substitute:    cfg.Substitute,
		table:         cfg.Thresholds,
		floorOverride: cfg.FloorOverride,
	}
	r.id = r.buildID()
	return r
}

// DefaultRuleConfig returns the configuration used when the build declares no rules.
func DefaultRuleConfig() domain.RuleConfig {
	table, err := domain.NewThresholdTable(DefaultThresholds...)
	if err != nil {
		panic(fmt.Sprintf("invalid default thresholds: %v", err))
	}
	return domain.RuleConfig{
		Coordinate: DefaultCoordinate,
		Substitute: DefaultSubstitute,
		Thresholds: table,
	}
}

// FallbackVariantName names the fallback variant for a floor, e.g. "compileSdkVersion_below_31".
func FallbackVariantName(floor int) string {
	return fallbackPrefix + strconv.Itoa(floor)
}

// IsFallbackVariant reports whether name was produced by FallbackVariantName.
func IsFallbackVariant(name string) bool {
	return strings.HasPrefix(name, fallbackPrefix)
}

// Coordinate returns the watched library family.
func (r *Rule) Coordinate() domain.LibraryCoordinate {
	return r.coordinate
}

// ID implements MetadataRule.
func (r *Rule) ID() string {
	return r.id
}

func (r *Rule) buildID() string {
	var b strings.Builder
	b.WriteString(r.coordinate.String())
	b.WriteString("->")
	b.WriteString(r.substitute.String())
	for _, th := range r.table.Thresholds() {
		fmt.Fprintf(&b, ";%s=%d", th.Trigger, th.Floor)
	}
	if r.floorOverride != 0 {
		fmt.Fprintf(&b, ";floor=%d", r.floorOverride)
	}
	return b.String()
}

// Execute implements MetadataRule.
func (r *Rule) Execute(meta *domain.ComponentMetadata) (Outcome, error) {
	if meta == nil || meta.ID.LibraryCoordinate != r.coordinate {
		return Outcome{}, nil
	}

	candidate, err := domain.ParseVersion(meta.ID.Version)
	if err != nil {
		return Outcome{}, zerr.With(zerr.Wrap(err, "cannot order component version"), "component", meta.ID.String())
	}

	th, ok := r.table.Lookup(candidate)
	if !ok {
		return Outcome{}, nil
	}

	floor := th.Floor
	if r.floorOverride != 0 {
		floor = r.floorOverride
	}

	// Existing variants now require the floor. Fallback variants keep the sentinel.
	meta.AllVariants(func(v *domain.Variant) {
		if IsFallbackVariant(v.Name) {
			return
		}
		v.Attributes.SetInt(domain.CompileSdkAttribute, floor)
	})

	name := FallbackVariantName(floor)
	meta.AddVariant(name, func(v *domain.Variant) {
		v.Dependencies = []domain.DependencyDeclaration{{
			Coordinate: r.substitute,
			Reason:     "Downgrade to support compileSdkVersion " + strconv.Itoa(floor-1),
		}}
		v.Attributes[domain.UsageAttribute] = domain.UsageJavaRuntime
		v.Attributes.SetInt(domain.CompileSdkAttribute, domain.FallbackSentinel)
	})

	return Outcome{Applied: true, Floor: floor, Variant: name}, nil
}
