// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application services in internal/services depend only on these
// abstractions; the concrete adapters live under internal/infrastructure.
package ports

import (
	"context"

	"loghook/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.loghook/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Scanner enumerates candidate integration targets and already-installed
// signals. Results are deterministic for a given filesystem state.
type Scanner interface {
	Scan(ctx context.Context, cfg domain.Config) (domain.ScanResult, error)
}

// MarkerCodec renders, detects, injects, and removes the managed block
// inside a target file.
type MarkerCodec interface {
	Render(marker domain.MarkerBlock, dialect domain.Dialect, hookPath string) string
	IsPresent(path string, marker domain.MarkerBlock) (bool, error)
	Install(target domain.ConfigTarget, marker domain.MarkerBlock, hookPath string) error
	Remove(target domain.ConfigTarget, marker domain.MarkerBlock) error
}

// BackupManager snapshots a target file before mutation. A disabled manager
// returns a zero-value Backup without error.
type BackupManager interface {
	Create(path string, tag string) (domain.Backup, error)
	Enabled() bool
}

// ToolDetector inspects a project directory for build tools and runtimes.
type ToolDetector interface {
	Detect(projectDir string) ([]domain.DetectedTool, error)
}

// Runner spawns short-lived child processes, used for the post-install
// smoke test and the subshell propagation check.
type Runner interface {
	Run(ctx context.Context, env map[string]string, name string, args ...string) error
	LookPath(name string) (string, bool)
}

// ConfirmationPrompter asks the operator before a destructive step.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
