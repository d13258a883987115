package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
)

// ColorLogger writes leveled, colored lines to stderr. Debug lines are only
// emitted in verbose mode; color degrades to plain text when stderr is not a
// terminal.
type ColorLogger struct {
	verbose bool
}

// New creates a ColorLogger.
func New(verbose bool) *ColorLogger {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.Disable()
	}
	return &ColorLogger{verbose: verbose}
}

func (l *ColorLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(os.Stderr, color.Debug.Sprint("[debug] ")+msg+formatFields(fields))
}

func (l *ColorLogger) Info(msg string, fields map[string]interface{}) {
	fmt.Fprintln(os.Stderr, color.Info.Sprint("[info] ")+msg+formatFields(fields))
}

func (l *ColorLogger) Warn(msg string, fields map[string]interface{}) {
	fmt.Fprintln(os.Stderr, color.Warn.Sprint("[warn] ")+msg+formatFields(fields))
}

func (l *ColorLogger) Error(msg string, err error, fields map[string]interface{}) {
	line := color.Error.Sprint("[error] ") + msg
	if err != nil {
		line += ": " + err.Error()
	}
	fmt.Fprintln(os.Stderr, line+formatFields(fields))
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
