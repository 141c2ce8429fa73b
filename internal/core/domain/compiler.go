package domain

// Candidate is a compiler binary the prober looks for, together with the
// optimization flags used when it is selected.
type Candidate struct {
	Name              string
	OptimizationFlags string
}

// CompilerChoice is the outcome of a probe. An empty Name means no candidate
// was resolvable on the host.
type CompilerChoice struct {
	Name              string
	OptimizationFlags string
}

// Found reports whether a compiler was selected.
func (c CompilerChoice) Found() bool {
	return c.Name != ""
}
