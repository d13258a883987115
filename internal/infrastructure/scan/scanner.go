package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"loghook/internal/domain"
	"loghook/internal/pkg/filesystem"
	"loghook/internal/ports"
)

type candidate struct {
	rel     string
	kind    domain.TargetKind
	dialect domain.Dialect
}

// candidates is the fixed, ordered list of interactive-shell startup and
// profile files considered for integration. Order is load-bearing: targets
// are processed strictly in this sequence, never directory order.
var candidates = []candidate{
	{".bashrc", domain.KindShellStartup, domain.DialectPosix},
	{".bash_profile", domain.KindShellStartup, domain.DialectPosix},
	{".zshrc", domain.KindShellStartup, domain.DialectPosix},
	{".zprofile", domain.KindProfileFile, domain.DialectPosix},
	{".profile", domain.KindProfileFile, domain.DialectPosix},
	{filepath.Join(".config", "fish", "config.fish"), domain.KindShellStartup, domain.DialectFish},
}

// Scanner enumerates integration targets under a home directory plus the
// project manifest in the working directory. Detection is purely textual.
type Scanner struct {
	home    string
	workDir string
	codec   ports.MarkerCodec
	getenv  func(string) string
}

// NewScanner builds a scanner rooted at home (defaults to the user's home
// directory) and workDir (defaults to the current directory).
func NewScanner(home, workDir string, codec ports.MarkerCodec) *Scanner {
	if home == "" {
		home = filesystem.UserHomeDir()
	}
	if workDir == "" {
		workDir = "."
	}
	return &Scanner{home: home, workDir: workDir, codec: codec, getenv: os.Getenv}
}

// Scan implements ports.Scanner. Only files that exist become targets; the
// result is deterministic for a given filesystem state.
func (s *Scanner) Scan(ctx context.Context, cfg domain.Config) (domain.ScanResult, error) {
	marker := domain.DefaultMarker()
	var result domain.ScanResult

	for _, c := range candidates {
		path := filepath.Join(s.home, c.rel)
		if !filesystem.FileExists(path) {
			continue
		}
		configured, err := s.codec.IsPresent(path, marker)
		if err != nil {
			return domain.ScanResult{}, err
		}
		result.Targets = append(result.Targets, domain.ConfigTarget{
			Path:       path,
			Kind:       c.kind,
			Dialect:    c.dialect,
			Configured: configured,
		})
		if configured {
			result.Signals = append(result.Signals, domain.Signal{
				Source: domain.SignalMarkerBlock,
				Path:   path,
			})
		}
	}

	if manifest := filepath.Join(s.workDir, "package.json"); filesystem.FileExists(manifest) {
		configured := fileMentionsHook(manifest, cfg.Hook.Path)
		result.Targets = append(result.Targets, domain.ConfigTarget{
			Path:       manifest,
			Kind:       domain.KindPackageManifest,
			Dialect:    domain.DialectNone,
			Configured: configured,
		})
	}

	if sig, ok := s.envSignal(cfg); ok {
		result.Signals = append(result.Signals, sig)
	}

	return result, nil
}

// envSignal reports an integration installed through the process-launch
// environment rather than a file loghook manages.
func (s *Scanner) envSignal(cfg domain.Config) (domain.Signal, bool) {
	value := s.getenv(cfg.Hook.EnvVar)
	if value == "" {
		return domain.Signal{}, false
	}
	if !strings.Contains(value, cfg.Hook.Path) && !strings.Contains(value, "loghook") {
		return domain.Signal{}, false
	}
	return domain.Signal{
		Source: domain.SignalEnvVar,
		EnvVar: cfg.Hook.EnvVar,
		Value:  value,
	}, true
}

func fileMentionsHook(path, hookPath string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	content := string(data)
	return strings.Contains(content, hookPath) || strings.Contains(content, "loghook")
}

var _ ports.Scanner = (*Scanner)(nil)
