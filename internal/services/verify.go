package services

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"loghook/internal/domain"
	"loghook/internal/ports"
)

// VerifyOptions carries per-run verification flags.
type VerifyOptions struct {
	Quick      bool
	Detailed   bool
	ReportPath string
}

// remediations maps a failing check name to an operator hint. The mapping is
// a fixed lookup table, never inferred.
var remediations = map[string]string{
	"hook-file":        "capture hook missing; reinstall the hook files or fix hook.path in config.yaml",
	"hook-content":     "capture hook is empty; reinstall the hook files",
	"hook-syntax":      "capture hook failed the syntax check; reinstall the hook files",
	"config-file":      "config.yaml is unreadable; delete it and re-run to regenerate defaults",
	"node-runtime":     "node is not on PATH; install node or extend PATH",
	"home-writable":    "home directory is not writable; fix permissions before installing",
	"terminal":         "no startup file carries the capture block; re-run `loghook install`",
	"environment":      "open a new terminal or source your startup file to pick up the variable",
	"subshell":         "the variable does not propagate to child processes; inspect your shell configuration",
	"dashboard-health": "dashboard did not respond; start the dashboard service",
	"dashboard-ingest": "dashboard ingest endpoint failed; restart the dashboard service",
	"dashboard-port":   "dashboard port is closed; start the dashboard service",
}

// VerifyService runs the fixed check battery: six Component, three
// Integration, three Service checks.
type VerifyService struct {
	ConfigProvider ports.ConfigProvider
	Scanner        ports.Scanner
	Runner         ports.Runner
	Logger         ports.Logger

	client *http.Client
	getenv func(string) string
	now    func() time.Time
}

// Run executes the battery and aggregates outcomes. Check failures never
// abort the harness; only pre-flight errors do.
func (s *VerifyService) Run(ctx context.Context, opts VerifyOptions) (domain.VerificationReport, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.VerificationReport{}, err
	}
	scanResult, err := s.Scanner.Scan(ctx, cfg)
	if err != nil {
		return domain.VerificationReport{}, err
	}

	report := domain.VerificationReport{RunID: uuid.NewString()}
	for _, tc := range s.battery(cfg, scanResult) {
		if opts.Quick && tc.Tier == domain.ServiceTier {
			report.Record(domain.TestOutcome{
				Name:   tc.Name,
				Tier:   tc.Tier,
				Result: domain.ResultSkip,
				Detail: "quick mode",
			})
			continue
		}

		start := s.clock()()
		outcome := tc.Check(ctx)
		outcome.Name = tc.Name
		outcome.Tier = tc.Tier
		outcome.DurationMS = s.clock()().Sub(start).Milliseconds()
		report.Record(outcome)

		s.Logger.Debug("check finished", map[string]interface{}{
			"name":   tc.Name,
			"result": outcome.Result,
			"ms":     outcome.DurationMS,
		})
		if outcome.Result == domain.ResultFail {
			if hint, ok := remediations[tc.Name]; ok {
				report.Remediations = append(report.Remediations, hint)
			}
		}
	}
	return report, nil
}

func (s *VerifyService) battery(cfg domain.Config, scanResult domain.ScanResult) []domain.TestCase {
	return []domain.TestCase{
		// Component tier: static presence and syntax of the pieces the
		// hook depends on.
		{Name: "hook-file", Tier: domain.ComponentTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkHookFile(cfg)
		}},
		{Name: "hook-content", Tier: domain.ComponentTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkHookContent(cfg)
		}},
		{Name: "hook-syntax", Tier: domain.ComponentTier, Check: func(ctx context.Context) domain.TestOutcome {
			return s.checkHookSyntax(ctx, cfg)
		}},
		{Name: "config-file", Tier: domain.ComponentTier, Check: func(ctx context.Context) domain.TestOutcome {
			return s.checkConfigFile(ctx)
		}},
		{Name: "node-runtime", Tier: domain.ComponentTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkNodeRuntime()
		}},
		{Name: "home-writable", Tier: domain.ComponentTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkHomeWritable(cfg)
		}},

		// Integration tier: does a startup file or the live environment
		// actually carry the signal.
		{Name: "terminal", Tier: domain.IntegrationTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkTerminal(scanResult)
		}},
		{Name: "environment", Tier: domain.IntegrationTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkEnvironment(cfg)
		}},
		{Name: "subshell", Tier: domain.IntegrationTier, Check: func(ctx context.Context) domain.TestOutcome {
			return s.checkSubshell(ctx, cfg)
		}},

		// Service tier: live dashboard probes, skipped wholesale in quick
		// mode.
		{Name: "dashboard-health", Tier: domain.ServiceTier, Check: func(ctx context.Context) domain.TestOutcome {
			return s.checkHTTP(ctx, cfg.Dashboard.URL+"/api/health")
		}},
		{Name: "dashboard-ingest", Tier: domain.ServiceTier, Check: func(ctx context.Context) domain.TestOutcome {
			return s.checkHTTP(ctx, cfg.Dashboard.URL+"/api/logs/recent")
		}},
		{Name: "dashboard-port", Tier: domain.ServiceTier, Check: func(context.Context) domain.TestOutcome {
			return s.checkPort(cfg.Dashboard.URL)
		}},
	}
}

func (s *VerifyService) checkHookFile(cfg domain.Config) domain.TestOutcome {
	if _, err := os.Stat(cfg.Hook.Path); err != nil {
		return fail(fmt.Sprintf("%s not found", cfg.Hook.Path))
	}
	return pass(cfg.Hook.Path)
}

func (s *VerifyService) checkHookContent(cfg domain.Config) domain.TestOutcome {
	data, err := os.ReadFile(cfg.Hook.Path)
	if err != nil {
		return fail(err.Error())
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fail("hook file is empty")
	}
	return pass(fmt.Sprintf("%d bytes", len(data)))
}

func (s *VerifyService) checkHookSyntax(ctx context.Context, cfg domain.Config) domain.TestOutcome {
	node, ok := s.Runner.LookPath("node")
	if !ok {
		return skip("node not available for syntax check")
	}
	ctx, cancel := context.WithTimeout(ctx, domain.SmokeTestTimeout)
	defer cancel()
	if err := s.Runner.Run(ctx, nil, node, "--check", cfg.Hook.Path); err != nil {
		return fail(err.Error())
	}
	return pass("node --check passed")
}

func (s *VerifyService) checkConfigFile(ctx context.Context) domain.TestOutcome {
	if _, err := s.ConfigProvider.Load(ctx); err != nil {
		return fail(err.Error())
	}
	return pass("config parsed")
}

func (s *VerifyService) checkNodeRuntime() domain.TestOutcome {
	path, ok := s.Runner.LookPath("node")
	if !ok {
		return fail("node not on PATH")
	}
	return pass(path)
}

func (s *VerifyService) checkHomeWritable(cfg domain.Config) domain.TestOutcome {
	dir := filepath.Dir(cfg.Hook.Path)
	probe, err := os.CreateTemp(dir, ".loghook-probe-*")
	if err != nil {
		return fail(fmt.Sprintf("%s not writable: %v", dir, err))
	}
	probe.Close()
	os.Remove(probe.Name())
	return pass(dir + " writable")
}

func (s *VerifyService) checkTerminal(scanResult domain.ScanResult) domain.TestOutcome {
	for _, sig := range scanResult.Signals {
		if sig.Source == domain.SignalMarkerBlock {
			return pass("capture block present in " + sig.Path)
		}
	}
	return fail("no startup file carries the capture block")
}

func (s *VerifyService) checkEnvironment(cfg domain.Config) domain.TestOutcome {
	value := s.env()(cfg.Hook.EnvVar)
	if value == "" {
		return fail(cfg.Hook.EnvVar + " not set in this process")
	}
	if !strings.Contains(value, cfg.Hook.Path) && !strings.Contains(value, "loghook") {
		return fail(cfg.Hook.EnvVar + " set but does not reference the capture hook")
	}
	return pass(cfg.Hook.EnvVar + " carries the capture hook")
}

func (s *VerifyService) checkSubshell(ctx context.Context, cfg domain.Config) domain.TestOutcome {
	ctx, cancel := context.WithTimeout(ctx, domain.SmokeTestTimeout)
	defer cancel()
	env := map[string]string{cfg.Hook.EnvVar: "--require " + cfg.Hook.Path}
	script := fmt.Sprintf(`[ -n "$%s" ]`, cfg.Hook.EnvVar)
	if err := s.Runner.Run(ctx, env, "/bin/sh", "-c", script); err != nil {
		return fail("child process did not see " + cfg.Hook.EnvVar)
	}
	return pass("variable visible in child process")
}

func (s *VerifyService) checkHTTP(ctx context.Context, rawURL string) domain.TestOutcome {
	ctx, cancel := context.WithTimeout(ctx, domain.ServiceCheckTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fail(err.Error())
	}
	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Sprintf("GET %s: %s", rawURL, resp.Status))
	}
	return pass(fmt.Sprintf("GET %s: %s", rawURL, resp.Status))
}

func (s *VerifyService) checkPort(rawURL string) domain.TestOutcome {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fail(err.Error())
	}
	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), defaultPort(u.Scheme))
	}
	conn, err := net.DialTimeout("tcp", host, domain.ServiceCheckTimeout)
	if err != nil {
		return fail(fmt.Sprintf("dial %s: %v", host, err))
	}
	conn.Close()
	return pass(host + " reachable")
}

func defaultPort(scheme string) string {
	if scheme == "https" {
		return "443"
	}
	return "80"
}

func (s *VerifyService) httpClient() *http.Client {
	if s.client != nil {
		return s.client
	}
	return &http.Client{Timeout: domain.ServiceCheckTimeout}
}

func (s *VerifyService) env() func(string) string {
	if s.getenv != nil {
		return s.getenv
	}
	return os.Getenv
}

func (s *VerifyService) clock() func() time.Time {
	if s.now != nil {
		return s.now
	}
	return time.Now
}

func pass(detail string) domain.TestOutcome {
	return domain.TestOutcome{Result: domain.ResultPass, Detail: detail}
}

func fail(detail string) domain.TestOutcome {
	return domain.TestOutcome{Result: domain.ResultFail, Detail: detail}
}

func skip(detail string) domain.TestOutcome {
	return domain.TestOutcome{Result: domain.ResultSkip, Detail: detail}
}
