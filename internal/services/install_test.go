package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loghook/internal/domain"
)

func TestInstallAppendsExactlyOneBlock(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".bashrc", "alias g=git\n")

	report, err := env.installService().Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	content := env.readFile(t, path)
	marker := domain.DefaultMarker()
	assert.Equal(t, 1, strings.Count(content, marker.StartSentinel))
	assert.Equal(t, 1, strings.Count(content, marker.EndSentinel))

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.ActionInstalled, report.Outcomes[0].Action)
	assert.Equal(t, domain.StrategyShell, report.Strategy)
	assert.NotEmpty(t, report.RunID)
}

func TestInstallIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".bashrc", "")
	svc := env.installService()

	_, err := svc.Run(context.Background(), InstallOptions{})
	require.NoError(t, err)
	afterFirst := env.readFile(t, path)

	report, err := svc.Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	assert.Equal(t, afterFirst, env.readFile(t, path), "second install must leave the file byte-identical")
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.ActionSkipped, report.Outcomes[0].Action)
	assert.Equal(t, "already configured", report.Outcomes[0].Detail)
}

func TestInstallForceReinstalls(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".zshrc", "alias g=git\n")
	svc := env.installService()

	_, err := svc.Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), InstallOptions{Force: true})
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.ActionReinstalled, report.Outcomes[0].Action)

	content := env.readFile(t, path)
	assert.Equal(t, 1, strings.Count(content, domain.DefaultMarker().StartSentinel))
}

func TestInstallDryRunWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".bashrc", "alias g=git\n")

	report, err := env.installService().Run(context.Background(), InstallOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, "alias g=git\n", env.readFile(t, path))
	assert.Empty(t, env.backupsFor(t, path), "dry run must not create backups")
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.ActionPlanned, report.Outcomes[0].Action)
	assert.True(t, report.DryRun)
}

func TestInstallFailsWithZeroTargets(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.installService().Run(context.Background(), InstallOptions{})
	require.ErrorIs(t, err, domain.ErrNoTargets)
}

func TestInstallBackupInvariant(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".bashrc", "alias g=git\n")

	report, err := env.installService().Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	backups := env.backupsFor(t, path)
	require.Len(t, backups, 1)
	assert.Equal(t, "alias g=git\n", env.readFile(t, backups[0]), "backup must hold pre-mutation content")

	outcome := report.Outcomes[0]
	assert.True(t, outcome.Backup.Created())
	assert.Equal(t, path, outcome.Backup.SourcePath)
}

func TestInstallNoBackupFlagSkipsSnapshot(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".bashrc", "")

	report, err := env.installService().Run(context.Background(), InstallOptions{NoBackup: true})
	require.NoError(t, err)

	assert.Empty(t, env.backupsFor(t, path))
	assert.Equal(t, domain.ActionInstalled, report.Outcomes[0].Action)
}

func TestInstallAbortsTargetWhenBackupFails(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeStartupFile(t, ".bashrc", "alias g=git\n")

	svc := env.installService()
	svc.Backups = failingBackups{}

	report, err := svc.Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	// No backup, no mutation.
	assert.Equal(t, "alias g=git\n", env.readFile(t, path))
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.ActionFailed, report.Outcomes[0].Action)
	assert.Equal(t, 1, report.ExitCode())
}

func TestInstallManifestGetsGuidanceOnly(t *testing.T) {
	env := newTestEnv(t)
	env.writeStartupFile(t, ".bashrc", "")
	manifest := env.workDir + "/package.json"
	require.NoError(t, writeFile(manifest, `{"name":"site","scripts":{"dev":"next dev"}}`))

	report, err := env.installService().Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyHybrid, report.Strategy)
	assert.Equal(t, `{"name":"site","scripts":{"dev":"next dev"}}`, env.readFile(t, manifest),
		"manifests are never auto-edited")

	var advised bool
	for _, o := range report.Outcomes {
		if o.Path == manifest {
			advised = o.Action == domain.ActionAdvised
		}
	}
	assert.True(t, advised)
	require.NotEmpty(t, report.Guidance)
	assert.Contains(t, report.Guidance[0], "NODE_OPTIONS")
}

func TestInstallGlobalIgnoresManifest(t *testing.T) {
	env := newTestEnv(t)
	env.writeStartupFile(t, ".bashrc", "")
	require.NoError(t, writeFile(env.workDir+"/package.json", `{"name":"site"}`))

	report, err := env.installService().Run(context.Background(), InstallOptions{Global: true})
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyGlobal, report.Strategy)
	for _, o := range report.Outcomes {
		assert.NotEqual(t, domain.ActionAdvised, o.Action)
	}
}

func TestInstallRunsSmokeTestWithHookEnv(t *testing.T) {
	env := newTestEnv(t)
	env.writeStartupFile(t, ".bashrc", "")

	runner := &stubRunner{nodePath: "/usr/bin/node"}
	svc := env.installService()
	svc.Runner = runner

	_, err := svc.Run(context.Background(), InstallOptions{})
	require.NoError(t, err)

	require.NotEmpty(t, runner.ran)
	assert.Equal(t, "/usr/bin/node", runner.ran[0])
	assert.Contains(t, runner.lastEnv["NODE_OPTIONS"], env.cfg.Hook.Path)
}

func TestClassifyStrategy(t *testing.T) {
	shell := domain.ConfigTarget{Kind: domain.KindShellStartup}
	manifest := domain.ConfigTarget{Kind: domain.KindPackageManifest}

	cases := []struct {
		name    string
		targets []domain.ConfigTarget
		global  bool
		want    domain.Strategy
	}{
		{"global wins", []domain.ConfigTarget{shell, manifest}, true, domain.StrategyGlobal},
		{"hybrid", []domain.ConfigTarget{shell, manifest}, false, domain.StrategyHybrid},
		{"package only", []domain.ConfigTarget{manifest}, false, domain.StrategyPackage},
		{"shell only", []domain.ConfigTarget{shell}, false, domain.StrategyShell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyStrategy(domain.ScanResult{Targets: tc.targets}, tc.global)
			assert.Equal(t, tc.want, got)
		})
	}
}
