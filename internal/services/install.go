package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"loghook/internal/domain"
	"loghook/internal/ports"
)

// InstallOptions carries per-run flags. Flags override the corresponding
// config-file and environment toggles when set.
type InstallOptions struct {
	Force    bool
	Global   bool
	DryRun   bool
	NoBackup bool
}

// InstallService drives the scanner, backup manager, and marker codec over
// every discovered target.
type InstallService struct {
	ConfigProvider ports.ConfigProvider
	Scanner        ports.Scanner
	Codec          ports.MarkerCodec
	Backups        ports.BackupManager
	Runner         ports.Runner
	Logger         ports.Logger
}

// Run executes one installation pass. Zero targets is fatal: the operator
// explicitly asked to install somewhere.
func (s *InstallService) Run(ctx context.Context, opts InstallOptions) (domain.InstallReport, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.InstallReport{}, err
	}
	force := opts.Force || cfg.Install.Force
	global := opts.Global || cfg.Install.Global
	dryRun := opts.DryRun || cfg.Install.DryRun

	result, err := s.Scanner.Scan(ctx, cfg)
	if err != nil {
		return domain.InstallReport{}, err
	}
	if len(result.Targets) == 0 {
		return domain.InstallReport{}, domain.ErrNoTargets
	}

	report := domain.InstallReport{
		RunID:    uuid.NewString(),
		Strategy: classifyStrategy(result, global),
		DryRun:   dryRun,
	}
	s.Logger.Debug("installation strategy selected", map[string]interface{}{
		"strategy": report.Strategy,
		"targets":  len(result.Targets),
	})

	marker := domain.DefaultMarker()
	modified := 0
	for _, target := range result.FileTargets() {
		outcome := s.installTarget(target, marker, cfg.Hook.Path, force, dryRun, opts.NoBackup)
		if outcome.Action == domain.ActionInstalled || outcome.Action == domain.ActionReinstalled {
			modified++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	if !global {
		for _, target := range result.ManifestTargets() {
			report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
				Path:   target.Path,
				Action: domain.ActionAdvised,
				Detail: "package manifests are never auto-edited",
			})
			report.Guidance = append(report.Guidance,
				fmt.Sprintf("edit %s manually: prefix your dev script with %s=\"--require %s\"",
					target.Path, cfg.Hook.EnvVar, cfg.Hook.Path))
		}
	}

	if modified > 0 && !dryRun {
		s.smokeTest(ctx, cfg, &report)
	}
	return report, nil
}

// classifyStrategy picks the installation strategy from the scan mix:
// global when explicitly requested, hybrid when both file and manifest
// targets exist, package when only manifests exist, shell otherwise.
func classifyStrategy(result domain.ScanResult, global bool) domain.Strategy {
	if global {
		return domain.StrategyGlobal
	}
	files := len(result.FileTargets())
	manifests := len(result.ManifestTargets())
	switch {
	case files > 0 && manifests > 0:
		return domain.StrategyHybrid
	case manifests > 0:
		return domain.StrategyPackage
	default:
		return domain.StrategyShell
	}
}

func (s *InstallService) installTarget(target domain.ConfigTarget, marker domain.MarkerBlock, hookPath string, force, dryRun, noBackup bool) domain.TargetOutcome {
	if target.Configured && !force {
		s.Logger.Warn("already configured, skipping", map[string]interface{}{"path": target.Path})
		return domain.TargetOutcome{
			Path:   target.Path,
			Action: domain.ActionSkipped,
			Detail: "already configured",
		}
	}

	if dryRun {
		detail := "would append capture block"
		if target.Configured {
			detail = "would remove and reinstall capture block"
		}
		return domain.TargetOutcome{Path: target.Path, Action: domain.ActionPlanned, Detail: detail}
	}

	var backup domain.Backup
	if !noBackup {
		var err error
		backup, err = s.Backups.Create(target.Path, domain.InstallBackupTag)
		if err != nil {
			// No backup, no mutation.
			s.Logger.Error("backup failed, target untouched", err, map[string]interface{}{"path": target.Path})
			return domain.TargetOutcome{Path: target.Path, Action: domain.ActionFailed, Detail: err.Error()}
		}
	}

	action := domain.ActionInstalled
	if target.Configured {
		if err := s.Codec.Remove(target, marker); err != nil {
			s.Logger.Error("forced reinstall failed during removal", err, map[string]interface{}{"path": target.Path})
			return domain.TargetOutcome{Path: target.Path, Action: domain.ActionFailed, Detail: err.Error(), Backup: backup}
		}
		action = domain.ActionReinstalled
	}
	if err := s.Codec.Install(target, marker, hookPath); err != nil {
		s.Logger.Error("install failed", err, map[string]interface{}{"path": target.Path})
		return domain.TargetOutcome{Path: target.Path, Action: domain.ActionFailed, Detail: err.Error(), Backup: backup}
	}

	s.Logger.Info("capture block installed", map[string]interface{}{"path": target.Path})
	return domain.TargetOutcome{Path: target.Path, Action: action, Detail: "capture block appended", Backup: backup}
}

// smokeTest spawns a fresh node process with the candidate variable set to
// catch path or permission mistakes before declaring success. Absence of
// node is not a failure; the verify command covers it properly.
func (s *InstallService) smokeTest(ctx context.Context, cfg domain.Config, report *domain.InstallReport) {
	if s.Runner == nil {
		return
	}
	node, ok := s.Runner.LookPath("node")
	if !ok {
		s.Logger.Debug("smoke test skipped, node not on PATH", nil)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, domain.SmokeTestTimeout)
	defer cancel()
	env := map[string]string{cfg.Hook.EnvVar: "--require " + cfg.Hook.Path}
	if err := s.Runner.Run(ctx, env, node, "-e", "process.exit(0)"); err != nil {
		s.Logger.Warn("post-install smoke test failed", map[string]interface{}{"error": err.Error()})
		report.Guidance = append(report.Guidance,
			fmt.Sprintf("a node process with %s set failed to start; check that %s exists and is readable",
				cfg.Hook.EnvVar, cfg.Hook.Path))
		return
	}
	s.Logger.Debug("post-install smoke test passed", nil)
}
