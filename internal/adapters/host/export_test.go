package host

import "context"

// NewDetectorFor creates a Detector with a fixed GOOS and kernel name source.
func NewDetectorFor(goos string, uname func(ctx context.Context) (string, error)) *Detector {
	return &Detector{goos: goos, uname: uname}
}
