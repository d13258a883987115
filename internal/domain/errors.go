package domain

import (
	"errors"
	"fmt"
)

// ErrNoTargets is returned when a mutating operation finds zero usable
// targets. Fatal for install, advisory elsewhere.
var ErrNoTargets = errors.New("no installation targets found")

// ErrDuplicateSentinel is returned when a target file contains more than one
// start sentinel for the same marker block. Duplicates violate the
// one-block-per-file invariant, so removal refuses to guess which instance
// to delete.
var ErrDuplicateSentinel = errors.New("duplicate marker sentinel in target file")

// ValidationError marks malformed flags or arguments detected before any
// action is taken.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// WriteFailure wraps a backup or mutation that could not be persisted.
// It aborts the affected target only; remaining targets continue.
type WriteFailure struct {
	Path string
	Err  error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteFailure) Unwrap() error {
	return e.Err
}
