package run

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"loghook/internal/ports"
)

// LocalRunner spawns short-lived child processes on the host, used for the
// post-install smoke test and the subshell propagation check.
type LocalRunner struct{}

// NewLocalRunner builds a runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run executes name with args, layering env over the inherited environment.
// The context bounds the child's wall-clock time.
func (r *LocalRunner) Run(ctx context.Context, env map[string]string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// LookPath reports whether name resolves on PATH.
func (r *LocalRunner) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	return path, err == nil
}

var _ ports.Runner = (*LocalRunner)(nil)
