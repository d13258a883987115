package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"loghook/internal/domain"
	"loghook/internal/pkg/filesystem"
	"loghook/internal/ports"
)

// Environment overrides. All are boolean-as-string ("true"/"false") except
// the report path.
const (
	EnvForce          = "LOGHOOK_FORCE"
	EnvDryRun         = "LOGHOOK_DRY_RUN"
	EnvBackupEnabled  = "LOGHOOK_BACKUP_ENABLED"
	EnvGlobalInstall  = "LOGHOOK_GLOBAL_INSTALL"
	EnvQuick          = "LOGHOOK_QUICK"
	EnvReportFile     = "LOGHOOK_REPORT_FILE"
	EnvConfirmRemoval = "LOGHOOK_CONFIRM_REMOVAL"
)

// FileLoader loads YAML configuration from ~/.loghook/config.yaml
// (overridable via LOGHOOK_CONFIG), then applies environment overrides.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return applyEnvOverrides(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return applyEnvOverrides(hydrateDefaults(cfg)), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("LOGHOOK_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".loghook", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.FilePermissions)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Hook: domain.HookSettings{
			Path:   filepath.Join(filesystem.UserHomeDir(), ".loghook", "capture.js"),
			EnvVar: domain.HookEnvVar,
		},
		Dashboard: domain.DashboardSettings{
			URL: "http://localhost:3456",
		},
		Backup: domain.BackupSettings{Enabled: true},
		Rollback: domain.RollbackSettings{
			ConfirmRemoval: true,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := defaultConfig()
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = def.ConfigFormatVersion
	}
	if cfg.Hook.Path == "" {
		cfg.Hook.Path = def.Hook.Path
	}
	if cfg.Hook.EnvVar == "" {
		cfg.Hook.EnvVar = def.Hook.EnvVar
	}
	if cfg.Dashboard.URL == "" {
		cfg.Dashboard.URL = def.Dashboard.URL
	}
	return cfg
}

func applyEnvOverrides(cfg domain.Config) domain.Config {
	if v, ok := boolEnv(EnvForce); ok {
		cfg.Install.Force = v
	}
	if v, ok := boolEnv(EnvDryRun); ok {
		cfg.Install.DryRun = v
	}
	if v, ok := boolEnv(EnvBackupEnabled); ok {
		cfg.Backup.Enabled = v
	}
	if v, ok := boolEnv(EnvGlobalInstall); ok {
		cfg.Install.Global = v
	}
	if v, ok := boolEnv(EnvQuick); ok {
		cfg.Verify.Quick = v
	}
	if v := os.Getenv(EnvReportFile); v != "" {
		cfg.Verify.ReportPath = expandPath(v)
	}
	if v, ok := boolEnv(EnvConfirmRemoval); ok {
		cfg.Rollback.ConfirmRemoval = v
	}
	return cfg
}

func boolEnv(name string) (value, present bool) {
	raw := os.Getenv(name)
	switch strings.ToLower(raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
