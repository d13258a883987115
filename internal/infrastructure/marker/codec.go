package marker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"loghook/internal/domain"
	"loghook/internal/ports"
)

// Codec renders, detects, injects, and removes the sentinel-delimited block
// loghook manages inside user-owned startup files.
type Codec struct {
	envVar string
}

// NewCodec builds a codec exporting the given environment variable.
func NewCodec(envVar string) *Codec {
	if envVar == "" {
		envVar = domain.HookEnvVar
	}
	return &Codec{envVar: envVar}
}

// Render produces the dialect-correct block text, sentinels included.
func (c *Codec) Render(marker domain.MarkerBlock, dialect domain.Dialect, hookPath string) string {
	var body string
	switch dialect {
	case domain.DialectFish:
		body = fmt.Sprintf("if test -f %q\n    set -gx %s \"--require %s\" $%s\nend",
			hookPath, c.envVar, hookPath, c.envVar)
	default:
		body = fmt.Sprintf("if [ -f %q ]; then\n  export %s=\"--require %s${%s:+ $%s}\"\nfi",
			hookPath, c.envVar, hookPath, c.envVar, c.envVar)
	}
	return marker.StartSentinel + "\n" + body + "\n" + marker.EndSentinel
}

// IsPresent reports whether the start sentinel occurs in the file. A missing
// file is simply not configured.
func (c *Codec) IsPresent(path string, marker domain.MarkerBlock) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return strings.Contains(string(data), marker.StartSentinel), nil
}

// Install appends the rendered block to the target, separated from existing
// content by one blank line.
func (c *Codec) Install(target domain.ConfigTarget, marker domain.MarkerBlock, hookPath string) error {
	data, err := os.ReadFile(target.Path)
	if err != nil {
		return err
	}
	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if content != "" {
		content += "\n"
	}
	content += c.Render(marker, target.Dialect, hookPath) + "\n"
	return os.WriteFile(target.Path, []byte(content), domain.FilePermissions)
}

// Remove deletes every line from the start sentinel through the end sentinel
// inclusive, then collapses trailing blank lines at end-of-file. A file with
// more than one start sentinel violates the one-block invariant and fails
// loudly rather than guessing which instance to delete.
func (c *Codec) Remove(target domain.ConfigTarget, marker domain.MarkerBlock) error {
	data, err := os.ReadFile(target.Path)
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")

	start := -1
	for i, line := range lines {
		if strings.Contains(line, marker.StartSentinel) {
			if start >= 0 {
				return fmt.Errorf("%s: %w", target.Path, domain.ErrDuplicateSentinel)
			}
			start = i
		}
	}
	if start < 0 {
		return nil
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], marker.EndSentinel) {
			end = i
			break
		}
	}
	if end < 0 {
		return fmt.Errorf("%s: marker block missing end sentinel %q", target.Path, marker.EndSentinel)
	}

	kept := append(append([]string{}, lines[:start]...), lines[end+1:]...)
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}
	content := strings.Join(kept, "\n")
	if content != "" {
		content += "\n"
	}
	return os.WriteFile(target.Path, []byte(content), domain.FilePermissions)
}

var _ ports.MarkerCodec = (*Codec)(nil)
