// Package ports defines the core interfaces for the application.
package ports

import "context"

// Process is the narrow process-execution boundary used by the build policy.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type Process interface {
	// Resolvable reports whether name can be found on the executable search path.
	Resolvable(name string) bool

	// Run executes name with args and returns its exit code.
	// It returns -1 when the process could not be started.
	Run(ctx context.Context, name string, args []string) int

	// Remove deletes path through an external removal command and reports
	// whether that command succeeded.
	Remove(ctx context.Context, path string) bool
}
