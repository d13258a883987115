package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for managed files (rw-r--r--)
	FilePermissions = 0o644
)

// Timeout constants
const (
	// ServiceCheckTimeout bounds each Service-tier network probe
	ServiceCheckTimeout = 2 * time.Second
	// SmokeTestTimeout bounds the post-install child-process check
	SmokeTestTimeout = 10 * time.Second
)

// Backup naming
const (
	// BackupTimestampLayout matches <original>.loghook-backup.YYYYMMDD_HHMMSS
	BackupTimestampLayout = "20060102_150405"
	// InstallBackupTag names install-triggered backups
	InstallBackupTag = "loghook-backup"
	// RemovalBackupTag names rollback-triggered backups
	RemovalBackupTag = "loghook-removal-backup"
)

// HookEnvVar is the process-launch variable the rendered block exports. The
// variable itself is externally owned; loghook only manages the
// marker-delimited assignment it writes.
const HookEnvVar = "NODE_OPTIONS"
