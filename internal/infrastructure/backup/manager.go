package backup

import (
	"fmt"
	"time"

	"loghook/internal/domain"
	"loghook/internal/pkg/filesystem"
	"loghook/internal/ports"
)

// Manager snapshots target files before mutation. Snapshots sit alongside
// the original and are never auto-deleted.
type Manager struct {
	enabled bool
	now     func() time.Time
}

// NewManager builds a backup manager. A disabled manager produces NoOp
// results without error.
func NewManager(enabled bool) *Manager {
	return &Manager{enabled: enabled, now: time.Now}
}

// Enabled reports whether snapshots will actually be written.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Create copies path to <path>.<tag>.<timestamp>. The caller owns the
// "no backup, no mutation" rule; Create only signals success or failure.
func (m *Manager) Create(path string, tag string) (domain.Backup, error) {
	if !m.enabled {
		return domain.Backup{}, nil
	}
	createdAt := m.now()
	backupPath := fmt.Sprintf("%s.%s.%s", path, tag, createdAt.Format(domain.BackupTimestampLayout))
	if err := filesystem.CopyFile(path, backupPath); err != nil {
		return domain.Backup{}, &domain.WriteFailure{Path: backupPath, Err: err}
	}
	return domain.Backup{
		SourcePath: path,
		BackupPath: backupPath,
		CreatedAt:  createdAt,
	}, nil
}

var _ ports.BackupManager = (*Manager)(nil)
