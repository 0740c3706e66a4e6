package domain

// ProjectKind distinguishes Android application and library projects.
type ProjectKind string

const (
	// KindApplication is an Android application project.
	KindApplication ProjectKind = "application"
	// KindLibrary is an Android library project.
	KindLibrary ProjectKind = "library"
)

// AndroidExtension is the "android" block of a project.
type AndroidExtension struct {
	Kind ProjectKind
	// CompileSdkVersion is written like "android-31". Empty means unset.
	CompileSdkVersion string
}

// Configuration is a named bucket of dependencies with request attributes.
type Configuration struct {
	Name         string
	Attributes   Attributes
	Dependencies []ModuleCoordinate
}

// Project is one module of a multi-module build.
type Project struct {
	Name string
	Path string
	// Android is nil for projects that do not target Android.
	Android        *AndroidExtension
	Configurations []*Configuration
}

// Configuration returns the configuration with the given name.
func (p *Project) Configuration(name string) (*Configuration, bool) {
	for _, c := range p.Configurations {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// RuleConfig parameterises one variant rewrite rule.
type RuleConfig struct {
	Coordinate LibraryCoordinate
	Substitute ModuleCoordinate
	Thresholds ThresholdTable
	// FloorOverride replaces the table floor when non-zero.
	FloorOverride int
}

// Build is everything a single evaluation works on.
type Build struct {
	Root     string
	Projects []*Project
	Rules    []RuleConfig
	// Components are declared inline in the build descriptor.
	Components []*ComponentMetadata
	// Repository points at a directory of module metadata files, if any.
	Repository string
}
