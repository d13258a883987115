package cli

// ExitError carries a specific process exit code from a command back to
// main: 1 for recoverable failures, 2 for critical/total failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
