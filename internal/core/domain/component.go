package domain

import "slices"

// DependencyDeclaration is a dependency a variant adds when selected.
type DependencyDeclaration struct {
	Coordinate ModuleCoordinate
	// Reason is a human readable justification shown in resolution reports.
	Reason string
}

// Variant is a named alternative view of a component, selectable by attributes.
type Variant struct {
	Name         string
	Attributes   Attributes
	Dependencies []DependencyDeclaration
}

// Clone returns a deep copy of the variant.
func (v Variant) Clone() Variant {
	return Variant{
		Name:         v.Name,
		Attributes:   v.Attributes.Clone(),
		Dependencies: slices.Clone(v.Dependencies),
	}
}

// ComponentMetadata is the resolved metadata of one module version.
// Rules mutate it before variant selection runs.
type ComponentMetadata struct {
	ID       ModuleCoordinate
	Variants []Variant
}

// Clone returns a deep copy of the metadata.
func (m *ComponentMetadata) Clone() *ComponentMetadata {
	out := &ComponentMetadata{ID: m.ID, Variants: make([]Variant, len(m.Variants))}
	for i, v := range m.Variants {
		out.Variants[i] = v.Clone()
	}
	return out
}

// Variant returns the variant with the given name.
func (m *ComponentMetadata) Variant(name string) (*Variant, bool) {
	for i := range m.Variants {
		if m.Variants[i].Name == name {
			return &m.Variants[i], true
		}
	}
	return nil, false
}

// AllVariants applies fn to every variant in declaration order.
func (m *ComponentMetadata) AllVariants(fn func(*Variant)) {
	for i := range m.Variants {
		if m.Variants[i].Attributes == nil {
			m.Variants[i].Attributes = Attributes{}
		}
		fn(&m.Variants[i])
	}
}

// AddVariant appends a variant built by fn. If a variant with the same name
// already exists it is rebuilt in place, so repeated rule runs converge.
func (m *ComponentMetadata) AddVariant(name string, fn func(*Variant)) {
	v := Variant{Name: name, Attributes: Attributes{}}
	fn(&v)
	if existing, ok := m.Variant(name); ok {
		*existing = v
		return
	}
	m.Variants = append(m.Variants, v)
}
