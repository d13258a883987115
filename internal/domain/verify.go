package domain

import "context"

// Tier groups verification checks from static file presence up to live
// network dependencies.
type Tier string

const (
	ComponentTier   Tier = "component"
	IntegrationTier Tier = "integration"
	ServiceTier     Tier = "service"
)

// TestResult is the outcome classification of one check.
type TestResult string

const (
	ResultPass TestResult = "pass"
	ResultFail TestResult = "fail"
	ResultSkip TestResult = "skip"
)

// TestCase is one named verification check.
type TestCase struct {
	Name  string
	Tier  Tier
	Check func(context.Context) TestOutcome
}

// TestOutcome is what a check returned, with wall-clock timing filled in by
// the harness.
type TestOutcome struct {
	Name       string
	Tier       Tier
	Result     TestResult
	Detail     string
	DurationMS int64
}

// VerificationReport aggregates a full battery run.
type VerificationReport struct {
	RunID        string
	Outcomes     []TestOutcome
	Total        int
	Passed       int
	Failed       int
	Skipped      int
	Remediations []string
}

// Record appends an outcome and updates the counters.
func (r *VerificationReport) Record(o TestOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Total++
	switch o.Result {
	case ResultPass:
		r.Passed++
	case ResultFail:
		r.Failed++
	case ResultSkip:
		r.Skipped++
	}
}

// ExitCode maps the aggregate counts onto the process exit policy: 2 when
// nothing could be verified, 1 when some checks failed, 0 otherwise.
func (r VerificationReport) ExitCode() int {
	if r.Passed == 0 {
		return 2
	}
	if r.Failed > 0 {
		return 1
	}
	return 0
}
