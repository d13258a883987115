package domain

import "time"

// Backup records one pre-mutation snapshot. Backups are created, never
// auto-deleted, and only read back by a human.
type Backup struct {
	SourcePath string
	BackupPath string
	CreatedAt  time.Time
}

// Created reports whether a snapshot was actually written (false for the
// NoOp result returned when backups are disabled).
func (b Backup) Created() bool {
	return b.BackupPath != ""
}
