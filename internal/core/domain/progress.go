package domain

// Step is the last known state of one recorded unit of work, such as
// applying the plugin to a project or rewriting a component.
type Step struct {
	Name   string `yaml:"name" json:"name"`
	Cached bool   `yaml:"cached,omitempty" json:"cached,omitempty"`
	Done   bool   `yaml:"done" json:"done"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}
