package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loghook/internal/domain"
)

func TestCreateWritesTimestampedCopy(t *testing.T) {
	src := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(src, []byte("alias g=git\n"), 0o644))

	m := NewManager(true)
	m.now = func() time.Time { return time.Date(2026, 8, 27, 14, 30, 5, 0, time.UTC) }

	b, err := m.Create(src, domain.InstallBackupTag)
	require.NoError(t, err)

	assert.True(t, b.Created())
	assert.Equal(t, src, b.SourcePath)
	assert.Equal(t, src+".loghook-backup.20260827_143005", b.BackupPath)

	data, err := os.ReadFile(b.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, "alias g=git\n", string(data))
}

func TestCreateUsesRemovalTag(t *testing.T) {
	src := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(src, []byte("x\n"), 0o644))

	m := NewManager(true)
	b, err := m.Create(src, domain.RemovalBackupTag)
	require.NoError(t, err)
	assert.Contains(t, b.BackupPath, ".loghook-removal-backup.")
}

func TestDisabledManagerReturnsNoOp(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.Enabled())

	b, err := m.Create(filepath.Join(t.TempDir(), "missing"), domain.InstallBackupTag)
	require.NoError(t, err)
	assert.False(t, b.Created())
}

func TestCreateFailsWhenSourceMissing(t *testing.T) {
	m := NewManager(true)
	_, err := m.Create(filepath.Join(t.TempDir(), "missing"), domain.InstallBackupTag)

	var wf *domain.WriteFailure
	require.ErrorAs(t, err, &wf)
}
