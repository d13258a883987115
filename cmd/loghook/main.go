package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"loghook/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "error:", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// isVerbose checks the flag before cobra parses: the logger is wired into
// the dependency graph ahead of command execution.
func isVerbose() bool {
	v := os.Getenv("LOGHOOK_VERBOSE")
	if strings.EqualFold(v, "1") || strings.EqualFold(v, "true") {
		return true
	}
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
