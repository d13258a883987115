package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"loghook/internal/domain"
	"loghook/internal/ports"
)

// RollbackOptions carries per-run flags for removal.
type RollbackOptions struct {
	Force     bool
	DryRun    bool
	NoConfirm bool
	NoBackup  bool
}

// RollbackService re-scans for installed signals, strips managed blocks, and
// re-verifies complete removal. Write failures are best-effort: remaining
// targets still get processed.
type RollbackService struct {
	ConfigProvider ports.ConfigProvider
	Scanner        ports.Scanner
	Codec          ports.MarkerCodec
	Backups        ports.BackupManager
	Prompter       ports.ConfirmationPrompter
	Logger         ports.Logger

	unsetenv func(string) error
}

// Run executes one rollback pass. An empty worklist is success with zero
// work done, not an error.
func (s *RollbackService) Run(ctx context.Context, opts RollbackOptions) (domain.RollbackReport, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RollbackReport{}, err
	}
	confirm := cfg.Rollback.ConfirmRemoval && !opts.Force && !opts.NoConfirm && !opts.DryRun

	result, err := s.Scanner.Scan(ctx, cfg)
	if err != nil {
		return domain.RollbackReport{}, err
	}

	report := domain.RollbackReport{RunID: uuid.NewString(), DryRun: opts.DryRun}
	if len(result.Signals) == 0 {
		s.Logger.Info("nothing to rollback", nil)
		return report, nil
	}

	marker := domain.DefaultMarker()
	for _, sig := range result.Signals {
		switch sig.Source {
		case domain.SignalMarkerBlock:
			s.removeBlock(sig, marker, confirm, opts, &report)
		case domain.SignalEnvVar:
			s.handleEnvSignal(sig, confirm, opts, &report)
		}
	}

	s.reverify(ctx, cfg, &report)
	return report, nil
}

func (s *RollbackService) removeBlock(sig domain.Signal, marker domain.MarkerBlock, confirm bool, opts RollbackOptions, report *domain.RollbackReport) {
	target := domain.ConfigTarget{Path: sig.Path, Configured: true}

	if confirm {
		ok, err := s.Prompter.Confirm(fmt.Sprintf("Remove capture block from %s?", sig.Path))
		if err != nil || !ok {
			report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
				Path:   sig.Path,
				Action: domain.ActionSkipped,
				Detail: "declined by operator",
			})
			return
		}
	}

	if opts.DryRun {
		report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
			Path:   sig.Path,
			Action: domain.ActionPlanned,
			Detail: "would remove capture block",
		})
		return
	}

	var backup domain.Backup
	if !opts.NoBackup {
		var err error
		backup, err = s.Backups.Create(sig.Path, domain.RemovalBackupTag)
		if err != nil {
			s.recordFailure(sig.Path, err, report)
			return
		}
	}

	if err := s.Codec.Remove(target, marker); err != nil {
		s.recordFailure(sig.Path, err, report)
		return
	}

	s.Logger.Info("capture block removed", map[string]interface{}{"path": sig.Path})
	report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
		Path:   sig.Path,
		Action: domain.ActionRemoved,
		Detail: "capture block removed",
		Backup: backup,
	})
}

// handleEnvSignal clears the process-local copy of the variable but never
// touches its external source: an assignment without a recognizable marker
// was installed by some other mechanism and is unsafe to alter.
func (s *RollbackService) handleEnvSignal(sig domain.Signal, confirm bool, opts RollbackOptions, report *domain.RollbackReport) {
	if confirm {
		ok, err := s.Prompter.Confirm(fmt.Sprintf("Clear %s for this process?", sig.EnvVar))
		if err != nil || !ok {
			report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
				Path:   sig.EnvVar,
				Action: domain.ActionSkipped,
				Detail: "declined by operator",
			})
			return
		}
	}
	if !opts.DryRun {
		unset := s.unsetenv
		if unset == nil {
			unset = os.Unsetenv
		}
		_ = unset(sig.EnvVar)
	}
	report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
		Path:   sig.EnvVar,
		Action: domain.ActionAdvised,
		Detail: "externally-owned variable, cleared for this process only",
	})
	report.Advice = append(report.Advice,
		fmt.Sprintf("%s still carries the hook outside this process; remove the assignment from whatever set it", sig.EnvVar))
}

func (s *RollbackService) recordFailure(path string, err error, report *domain.RollbackReport) {
	s.Logger.Error("rollback failed for target", err, map[string]interface{}{"path": path})
	report.Outcomes = append(report.Outcomes, domain.TargetOutcome{
		Path:   path,
		Action: domain.ActionFailed,
		Detail: err.Error(),
	})
	report.Failures = append(report.Failures, path)
}

// reverify re-scans and flags any marker block that survived removal.
func (s *RollbackService) reverify(ctx context.Context, cfg domain.Config, report *domain.RollbackReport) {
	if report.DryRun {
		return
	}
	result, err := s.Scanner.Scan(ctx, cfg)
	if err != nil {
		s.Logger.Warn("post-rollback re-scan failed", map[string]interface{}{"error": err.Error()})
		return
	}
	for _, sig := range result.Signals {
		if sig.Source != domain.SignalMarkerBlock {
			continue
		}
		if !contains(report.Failures, sig.Path) {
			report.Failures = append(report.Failures, sig.Path)
			report.Advice = append(report.Advice,
				fmt.Sprintf("%s still contains the capture block after rollback; inspect it manually", sig.Path))
		}
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
