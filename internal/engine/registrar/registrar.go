// Package registrar installs the compile SDK selection attribute on the
// attributes schema and stamps project configurations with it.
package registrar

import (
	"go.trai.ch/sdkcompat/internal/core/domain"
)

// Registrar owns the compile SDK attribute registration for one build.
type Registrar struct {
	schema *domain.AttributesSchema
}

// New creates a Registrar bound to schema.
func New(schema *domain.AttributesSchema) *Registrar {
	return &Registrar{schema: schema}
}

// Register installs ordered compatibility and pick-last disambiguation for
// the compile SDK attribute. Later calls leave the first registration in place.
func (r *Registrar) Register() bool {
	return r.schema.Register(domain.CompileSdkAttribute, domain.MatchingStrategy{
		Compatibility:  domain.OrderedIntCompatibility{},
		Disambiguation: domain.PickLastInt{},
	})
}

// Stamp sets the compile SDK attribute on every configuration of p.
func (r *Registrar) Stamp(p *domain.Project, level domain.PlatformVersion) {
	for _, c := range p.Configurations {
		if c.Attributes == nil {
			c.Attributes = domain.Attributes{}
		}
		c.Attributes.SetInt(domain.CompileSdkAttribute, level.Int())
	}
}
