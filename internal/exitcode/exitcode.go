// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, no TTY).
	UserError = 1

	// ConfigError indicates an unreadable config file or unusable base URL.
	ConfigError = 2

	// BackendError indicates a backend/HTTP/network error.
	BackendError = 3
)
