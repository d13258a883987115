package domain

// Strategy classifies how an installation run will proceed, derived from the
// mix of targets the scanner found.
type Strategy string

const (
	StrategyShell   Strategy = "shell"
	StrategyPackage Strategy = "package"
	StrategyHybrid  Strategy = "hybrid"
	StrategyGlobal  Strategy = "global"
)

// TargetAction is what the orchestrator or coordinator did to one target.
type TargetAction string

const (
	ActionInstalled   TargetAction = "installed"
	ActionReinstalled TargetAction = "reinstalled"
	ActionSkipped     TargetAction = "skipped"
	ActionRemoved     TargetAction = "removed"
	ActionAdvised     TargetAction = "advised"
	ActionFailed      TargetAction = "failed"
	ActionPlanned     TargetAction = "planned"
)

// TargetOutcome is the per-target row of an install or rollback report.
type TargetOutcome struct {
	Path   string
	Action TargetAction
	Detail string
	Backup Backup
}

// InstallReport aggregates one installation run.
type InstallReport struct {
	RunID    string
	Strategy Strategy
	DryRun   bool
	Outcomes []TargetOutcome
	Guidance []string
}

// Counts returns installed/skipped/failed tallies.
func (r InstallReport) Counts() (installed, skipped, failed int) {
	for _, o := range r.Outcomes {
		switch o.Action {
		case ActionInstalled, ActionReinstalled, ActionPlanned:
			installed++
		case ActionSkipped, ActionAdvised:
			skipped++
		case ActionFailed:
			failed++
		}
	}
	return
}

// ExitCode is 1 when any target failed, 0 otherwise.
func (r InstallReport) ExitCode() int {
	if _, _, failed := r.Counts(); failed > 0 {
		return 1
	}
	return 0
}

// RollbackReport aggregates one rollback run.
type RollbackReport struct {
	RunID    string
	DryRun   bool
	Outcomes []TargetOutcome
	Failures []string
	Advice   []string
}

// Counts returns removed/skipped/failed tallies.
func (r RollbackReport) Counts() (removed, skipped, failed int) {
	for _, o := range r.Outcomes {
		switch o.Action {
		case ActionRemoved, ActionPlanned:
			removed++
		case ActionSkipped, ActionAdvised:
			skipped++
		case ActionFailed:
			failed++
		}
	}
	return
}

// ExitCode is 1 when any removal failed, 0 otherwise.
func (r RollbackReport) ExitCode() int {
	if len(r.Failures) > 0 {
		return 1
	}
	return 0
}
