// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Failure covers runtime errors and rejected task input.
	Failure = 1

	// Usage indicates bad arguments or an unknown subcommand.
	Usage = 2
)
