package domain

// BuildResult records what the build driver observed. The default run mode
// does not act on it.
type BuildResult struct {
	// ExitCode is the build tool's exit status, -1 if it could not be started.
	ExitCode int
	// Removed reports whether the descriptor cleanup succeeded.
	Removed bool
}

// Succeeded reports whether the build tool exited cleanly.
func (r BuildResult) Succeeded() bool {
	return r.ExitCode == 0
}
