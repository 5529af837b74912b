package manifest

// APIVersion is the only batch file version understood by this build.
const APIVersion = "vuegen/v1"

// Batch is a parsed components.yaml file.
type Batch struct {
	APIVersion string `yaml:"apiVersion" json:"apiVersion"`
	Requires   string `yaml:"requires,omitempty" json:"requires,omitempty"`
	Root       string `yaml:"root,omitempty" json:"root,omitempty"`
	Force      bool   `yaml:"force,omitempty" json:"force,omitempty"`
	// Components is left untyped; each entry is checked by component.Resolve
	// so that a non-string entry reports the same error as the CLI.
	Components []any `yaml:"components" json:"components"`
}
