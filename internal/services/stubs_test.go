package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"loghook/internal/domain"
	"loghook/internal/infrastructure/backup"
	"loghook/internal/infrastructure/marker"
	"loghook/internal/infrastructure/scan"
	"loghook/internal/pkg/logger"
	"loghook/internal/ports"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubScanner struct {
	result domain.ScanResult
	err    error
}

func (s stubScanner) Scan(context.Context, domain.Config) (domain.ScanResult, error) {
	return s.result, s.err
}

type stubRunner struct {
	nodePath string
	runErr   error
	ran      []string
	lastEnv  map[string]string
}

func (s *stubRunner) Run(ctx context.Context, env map[string]string, name string, args ...string) error {
	s.ran = append(s.ran, name)
	s.lastEnv = env
	return s.runErr
}

func (s *stubRunner) LookPath(name string) (string, bool) {
	if s.nodePath == "" {
		return "", false
	}
	return s.nodePath, true
}

type stubPrompter struct {
	answer bool
	err    error
	asked  []string
}

func (s *stubPrompter) Confirm(question string) (bool, error) {
	s.asked = append(s.asked, question)
	return s.answer, s.err
}

type failingBackups struct{}

func (failingBackups) Create(path, tag string) (domain.Backup, error) {
	return domain.Backup{}, &domain.WriteFailure{Path: path, Err: errors.New("disk full")}
}

func (failingBackups) Enabled() bool { return true }

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// testEnv assembles real scanner/codec/backup infrastructure over a temp
// home directory.
type testEnv struct {
	home    string
	workDir string
	cfg     domain.Config
	codec   ports.MarkerCodec
	scanner ports.Scanner
	backups ports.BackupManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	workDir := t.TempDir()
	hookPath := filepath.Join(home, ".loghook", "capture.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(hookPath), 0o755))
	require.NoError(t, os.WriteFile(hookPath, []byte("module.exports = {};\n"), 0o644))

	codec := marker.NewCodec("NODE_OPTIONS")
	return &testEnv{
		home:    home,
		workDir: workDir,
		cfg: domain.Config{
			ConfigFormatVersion: "1",
			Hook:                domain.HookSettings{Path: hookPath, EnvVar: "NODE_OPTIONS"},
			Dashboard:           domain.DashboardSettings{URL: "http://localhost:3456"},
			Backup:              domain.BackupSettings{Enabled: true},
			Rollback:            domain.RollbackSettings{ConfirmRemoval: true},
		},
		codec:   codec,
		scanner: scan.NewScanner(home, workDir, codec),
		backups: backup.NewManager(true),
	}
}

func (e *testEnv) writeStartupFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(e.home, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (e *testEnv) readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func (e *testEnv) backupsFor(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".loghook-*")
	require.NoError(t, err)
	return matches
}

func (e *testEnv) installService() *InstallService {
	return &InstallService{
		ConfigProvider: stubConfigProvider{cfg: e.cfg},
		Scanner:        e.scanner,
		Codec:          e.codec,
		Backups:        e.backups,
		Runner:         &stubRunner{},
		Logger:         logger.New(false),
	}
}

func (e *testEnv) rollbackService(prompter ports.ConfirmationPrompter) *RollbackService {
	return &RollbackService{
		ConfigProvider: stubConfigProvider{cfg: e.cfg},
		Scanner:        e.scanner,
		Codec:          e.codec,
		Backups:        e.backups,
		Prompter:       prompter,
		Logger:         logger.New(false),
		unsetenv:       func(string) error { return nil },
	}
}
