package domain

// RewriteRecord describes what a rule did to one component.
type RewriteRecord struct {
	Component string `yaml:"component" json:"component"`
	Rule      string `yaml:"rule" json:"rule"`
	Applied   bool   `yaml:"applied" json:"applied"`
	Floor     int    `yaml:"floor,omitempty" json:"floor,omitempty"`
	Variant   string `yaml:"variant,omitempty" json:"variant,omitempty"`
	Cached    bool   `yaml:"cached,omitempty" json:"cached,omitempty"`
}

// Selection is the variant a configuration resolves for one dependency.
type Selection struct {
	Configuration string   `yaml:"configuration" json:"configuration"`
	Dependency    string   `yaml:"dependency" json:"dependency"`
	Variant       string   `yaml:"variant,omitempty" json:"variant,omitempty"`
	Adds          []string `yaml:"adds,omitempty" json:"adds,omitempty"`
	Error         string   `yaml:"error,omitempty" json:"error,omitempty"`
}

// ProjectReport is the outcome for one project.
type ProjectReport struct {
	Project string `yaml:"project" json:"project"`
	// Kind is empty for projects that do not target Android.
	Kind ProjectKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	// CompileSdk is zero when detection found nothing.
	CompileSdk int         `yaml:"compileSdk,omitempty" json:"compileSdk,omitempty"`
	Skipped    bool        `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Selections []Selection `yaml:"selections,omitempty" json:"selections,omitempty"`
}

// Report is the outcome of evaluating a build.
type Report struct {
	Projects []ProjectReport `yaml:"projects" json:"projects"`
	Rewrites []RewriteRecord `yaml:"rewrites,omitempty" json:"rewrites,omitempty"`
}
