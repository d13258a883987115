package cli

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"loghook/internal/domain"
)

// RenderInstallReport formats one installation run for the terminal.
func RenderInstallReport(report domain.InstallReport) string {
	var b strings.Builder
	header := "Installation"
	if report.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintf(&b, "%s (strategy: %s)\n", color.Bold.Sprint(header), report.Strategy)
	for _, o := range report.Outcomes {
		fmt.Fprintf(&b, "  %s %s: %s\n", actionBadge(o.Action), o.Path, o.Detail)
		if o.Backup.Created() {
			fmt.Fprintf(&b, "      backup: %s\n", o.Backup.BackupPath)
		}
	}
	installed, skipped, failed := report.Counts()
	fmt.Fprintf(&b, "Targets: %d installed, %d skipped, %d failed\n", installed, skipped, failed)
	for _, g := range report.Guidance {
		fmt.Fprintf(&b, "  %s %s\n", color.Note.Sprint("hint:"), g)
	}
	return b.String()
}

// RenderRollbackReport formats one rollback run for the terminal.
func RenderRollbackReport(report domain.RollbackReport) string {
	var b strings.Builder
	header := "Rollback"
	if report.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintln(&b, color.Bold.Sprint(header))
	if len(report.Outcomes) == 0 {
		fmt.Fprintln(&b, "  nothing to rollback")
		return b.String()
	}
	for _, o := range report.Outcomes {
		fmt.Fprintf(&b, "  %s %s: %s\n", actionBadge(o.Action), o.Path, o.Detail)
		if o.Backup.Created() {
			fmt.Fprintf(&b, "      backup: %s\n", o.Backup.BackupPath)
		}
	}
	removed, skipped, failed := report.Counts()
	fmt.Fprintf(&b, "Targets: %d removed, %d skipped, %d failed\n", removed, skipped, failed)
	for _, a := range report.Advice {
		fmt.Fprintf(&b, "  %s %s\n", color.Note.Sprint("hint:"), a)
	}
	return b.String()
}

// RenderVerificationReport formats the check battery. Detailed mode adds
// per-check timing and detail strings.
func RenderVerificationReport(report domain.VerificationReport, detailed bool) string {
	var b strings.Builder
	fmt.Fprintln(&b, color.Bold.Sprint("Verification"))
	currentTier := domain.Tier("")
	for _, o := range report.Outcomes {
		if o.Tier != currentTier {
			currentTier = o.Tier
			fmt.Fprintf(&b, "%s checks:\n", titleCase(string(currentTier)))
		}
		if detailed {
			fmt.Fprintf(&b, "  %s %-18s %5dms  %s\n", resultBadge(o.Result), o.Name, o.DurationMS, o.Detail)
		} else {
			fmt.Fprintf(&b, "  %s %s\n", resultBadge(o.Result), o.Name)
		}
	}
	fmt.Fprintf(&b, "Total: %d, passed: %d, failed: %d, skipped: %d\n",
		report.Total, report.Passed, report.Failed, report.Skipped)
	for _, r := range report.Remediations {
		fmt.Fprintf(&b, "  %s %s\n", color.Note.Sprint("hint:"), r)
	}
	return b.String()
}

// RenderDetectedTools formats detector output with framework guidance first.
func RenderDetectedTools(tools []domain.DetectedTool, guidanceFor func(string) string) string {
	var b strings.Builder
	if len(tools) == 0 {
		fmt.Fprintln(&b, "No build tools detected; manual setup required.")
		return b.String()
	}
	fmt.Fprintln(&b, color.Bold.Sprint("Detected tools"))
	for _, t := range tools {
		evidence := string(t.ConfidenceSource)
		if t.ConfigFile != "" {
			evidence = t.ConfigFile
		}
		fmt.Fprintf(&b, "  %s %s (%s)\n", color.Success.Sprint("•"), t.Name, evidence)
		if hint := guidanceFor(t.Name); hint != "" {
			fmt.Fprintf(&b, "      %s\n", hint)
		}
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func actionBadge(a domain.TargetAction) string {
	switch a {
	case domain.ActionInstalled, domain.ActionReinstalled, domain.ActionRemoved:
		return color.Success.Sprint("✓")
	case domain.ActionFailed:
		return color.Error.Sprint("✗")
	case domain.ActionPlanned:
		return color.Info.Sprint("→")
	default:
		return color.Warn.Sprint("-")
	}
}

func resultBadge(r domain.TestResult) string {
	switch r {
	case domain.ResultPass:
		return color.Success.Sprint("PASS")
	case domain.ResultFail:
		return color.Error.Sprint("FAIL")
	default:
		return color.Warn.Sprint("SKIP")
	}
}
