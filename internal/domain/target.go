package domain

// TargetKind classifies where an integration can live.
type TargetKind string

const (
	KindShellStartup    TargetKind = "shell-startup"
	KindProfileFile     TargetKind = "profile"
	KindPackageManifest TargetKind = "manifest"
)

// Dialect selects the rendering family for a marker block.
type Dialect string

const (
	DialectPosix Dialect = "posix"
	DialectFish  Dialect = "fish"
	DialectNone  Dialect = "none"
)

// ConfigTarget is one candidate file discovered during a scan. Immutable for
// the duration of a run.
type ConfigTarget struct {
	Path       string
	Kind       TargetKind
	Dialect    Dialect
	Configured bool
}

// SignalSource describes how an already-installed integration was detected.
type SignalSource string

const (
	SignalMarkerBlock SignalSource = "marker-block"
	SignalEnvVar      SignalSource = "env-var"
)

// Signal records an installed-integration indicator found during scanning.
// File-based signals carry the target path; env-var signals carry the
// variable name and its current value.
type Signal struct {
	Source SignalSource
	Path   string
	EnvVar string
	Value  string
}

// ScanResult is the Scanner's complete output, passed by value through the
// install and rollback pipelines.
type ScanResult struct {
	Targets []ConfigTarget
	Signals []Signal
}

// ConfiguredTargets returns the subset of targets already carrying the
// managed block.
func (r ScanResult) ConfiguredTargets() []ConfigTarget {
	var out []ConfigTarget
	for _, t := range r.Targets {
		if t.Configured {
			out = append(out, t)
		}
	}
	return out
}

// FileTargets returns targets backed by shell startup or profile files.
func (r ScanResult) FileTargets() []ConfigTarget {
	var out []ConfigTarget
	for _, t := range r.Targets {
		if t.Kind != KindPackageManifest {
			out = append(out, t)
		}
	}
	return out
}

// ManifestTargets returns package-manifest targets.
func (r ScanResult) ManifestTargets() []ConfigTarget {
	var out []ConfigTarget
	for _, t := range r.Targets {
		if t.Kind == KindPackageManifest {
			out = append(out, t)
		}
	}
	return out
}

// EnvSignals returns the environment-variable signals only.
func (r ScanResult) EnvSignals() []Signal {
	var out []Signal
	for _, s := range r.Signals {
		if s.Source == SignalEnvVar {
			out = append(out, s)
		}
	}
	return out
}
