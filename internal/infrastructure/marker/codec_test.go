package marker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loghook/internal/domain"
)

func writeTarget(t *testing.T, content string) domain.ConfigTarget {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return domain.ConfigTarget{Path: path, Kind: domain.KindShellStartup, Dialect: domain.DialectPosix}
}

func readTarget(t *testing.T, target domain.ConfigTarget) string {
	t.Helper()
	data, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	return string(data)
}

func TestRenderPosixDialect(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	block := codec.Render(domain.DefaultMarker(), domain.DialectPosix, "/home/u/.loghook/capture.js")

	assert.True(t, strings.HasPrefix(block, domain.DefaultMarker().StartSentinel))
	assert.True(t, strings.HasSuffix(block, domain.DefaultMarker().EndSentinel))
	assert.Contains(t, block, `if [ -f "/home/u/.loghook/capture.js" ]; then`)
	assert.Contains(t, block, "export NODE_OPTIONS=")
	assert.Contains(t, block, "fi")
}

func TestRenderFishDialect(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	block := codec.Render(domain.DefaultMarker(), domain.DialectFish, "/home/u/.loghook/capture.js")

	assert.Contains(t, block, `if test -f "/home/u/.loghook/capture.js"`)
	assert.Contains(t, block, "set -gx NODE_OPTIONS")
	assert.Contains(t, block, "\nend")
	assert.NotContains(t, block, "export")
}

func TestInstallThenIsPresent(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	marker := domain.DefaultMarker()
	target := writeTarget(t, "alias ll='ls -l'\n")

	present, err := codec.IsPresent(target.Path, marker)
	require.NoError(t, err)
	assert.False(t, present)

	require.NoError(t, codec.Install(target, marker, "/hook.js"))

	present, err = codec.IsPresent(target.Path, marker)
	require.NoError(t, err)
	assert.True(t, present)

	content := readTarget(t, target)
	assert.Equal(t, 1, strings.Count(content, marker.StartSentinel))
	assert.Equal(t, 1, strings.Count(content, marker.EndSentinel))
	assert.True(t, strings.HasPrefix(content, "alias ll='ls -l'\n"))
}

func TestIsPresentMissingFile(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	present, err := codec.IsPresent(filepath.Join(t.TempDir(), "no-such-file"), domain.DefaultMarker())
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRemoveRestoresOriginalContent(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	marker := domain.DefaultMarker()
	original := "export PATH=$PATH:/usr/local/bin\nalias g=git\n"
	target := writeTarget(t, original)

	require.NoError(t, codec.Install(target, marker, "/hook.js"))
	require.NoError(t, codec.Remove(target, marker))

	assert.Equal(t, original, readTarget(t, target))
}

func TestRemoveCollapsesTrailingBlankLines(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	marker := domain.DefaultMarker()
	target := writeTarget(t, "alias g=git\n\n\n"+codec.Render(marker, domain.DialectPosix, "/hook.js")+"\n\n\n")

	require.NoError(t, codec.Remove(target, marker))

	assert.Equal(t, "alias g=git\n", readTarget(t, target))
}

func TestRemoveOnEmptyResultLeavesEmptyFile(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	marker := domain.DefaultMarker()
	target := writeTarget(t, codec.Render(marker, domain.DialectPosix, "/hook.js")+"\n")

	require.NoError(t, codec.Remove(target, marker))

	assert.Equal(t, "", readTarget(t, target))
}

func TestRemoveWithoutBlockIsNoOp(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	target := writeTarget(t, "alias g=git\n")

	require.NoError(t, codec.Remove(target, domain.DefaultMarker()))
	assert.Equal(t, "alias g=git\n", readTarget(t, target))
}

func TestRemoveRejectsDuplicateSentinels(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	marker := domain.DefaultMarker()
	block := codec.Render(marker, domain.DialectPosix, "/hook.js")
	target := writeTarget(t, block+"\n"+block+"\n")

	err := codec.Remove(target, marker)
	require.ErrorIs(t, err, domain.ErrDuplicateSentinel)

	// Refusal must leave the file untouched.
	assert.Equal(t, block+"\n"+block+"\n", readTarget(t, target))
}

func TestRemoveRejectsUnterminatedBlock(t *testing.T) {
	codec := NewCodec("NODE_OPTIONS")
	marker := domain.DefaultMarker()
	target := writeTarget(t, marker.StartSentinel+"\nexport X=1\n")

	err := codec.Remove(target, marker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end sentinel")
}
