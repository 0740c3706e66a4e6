package config

// Descriptor is the structure of sdkcompat.yaml. The Starlark form decodes
// into the same structure.
type Descriptor struct {
	// Root overrides the build root. Relative paths resolve against the descriptor.
	Root string `yaml:"root"`
	// Repository is a directory of Gradle module metadata files.
	Repository string         `yaml:"repository"`
	Rules      []RuleDTO      `yaml:"rules"`
	Projects   []ProjectDTO   `yaml:"projects"`
	Components []ComponentDTO `yaml:"components"`
}

// RuleDTO configures one rewrite rule.
type RuleDTO struct {
	Coordinate string         `yaml:"coordinate"`
	Substitute string         `yaml:"substitute"`
	Thresholds []ThresholdDTO `yaml:"thresholds"`
	Floor      int            `yaml:"floor"`
}

// ThresholdDTO is one trigger/floor pair.
type ThresholdDTO struct {
	Trigger string `yaml:"trigger"`
	Floor   int    `yaml:"floor"`
}

// ProjectDTO is one project of the build.
type ProjectDTO struct {
	Name           string             `yaml:"name"`
	Path           string             `yaml:"path"`
	Android        *AndroidDTO        `yaml:"android"`
	Configurations []ConfigurationDTO `yaml:"configurations"`
}

// AndroidDTO is the android block of a project.
type AndroidDTO struct {
	Kind              string `yaml:"kind"`
	CompileSdkVersion string `yaml:"compileSdkVersion"`
}

// ConfigurationDTO is a resolvable configuration.
type ConfigurationDTO struct {
	Name         string            `yaml:"name"`
	Attributes   map[string]string `yaml:"attributes"`
	Dependencies []string          `yaml:"dependencies"`
}

// ComponentDTO declares component metadata inline.
type ComponentDTO struct {
	ID       string       `yaml:"id"`
	Variants []VariantDTO `yaml:"variants"`
}

// VariantDTO is one variant of a component.
type VariantDTO struct {
	Name         string            `yaml:"name"`
	Attributes   map[string]string `yaml:"attributes"`
	Dependencies []DependencyDTO   `yaml:"dependencies"`
}

// DependencyDTO is a dependency declared by a variant.
type DependencyDTO struct {
	Coordinate string `yaml:"coordinate"`
	Reason     string `yaml:"reason"`
}
