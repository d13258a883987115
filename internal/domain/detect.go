package domain

// ConfidenceSource says which evidence detected a tool. A config file on
// disk is preferred over a manifest dependency when both are present.
type ConfidenceSource string

const (
	ConfigFilePresent  ConfidenceSource = "config-file"
	ManifestDependency ConfidenceSource = "manifest-dependency"
)

// DetectedTool is one build tool or runtime found in a project directory.
// Order in the detector's output matters: most-specific frameworks come
// before generic bundlers and runtime signals.
type DetectedTool struct {
	Name             string
	ConfigFile       string
	ConfidenceSource ConfidenceSource
}
