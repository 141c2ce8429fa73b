// Package host identifies the platform the library is being built on.
package host

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"go.trai.ch/tribuild/internal/core/ports"
)

// Cygwin is the platform reported for Windows builds running under Cygwin.
const Cygwin = "cygwin"

var _ ports.PlatformDetector = (*Detector)(nil)

// Detector implements ports.PlatformDetector.
type Detector struct {
	goos  string
	uname func(ctx context.Context) (string, error)
}

// NewDetector creates a Detector for the running binary.
func NewDetector() *Detector {
	return &Detector{goos: runtime.GOOS, uname: uname}
}

// Detect returns runtime.GOOS, except that a Windows host whose kernel
// name reports Cygwin is identified as "cygwin".
func (d *Detector) Detect(ctx context.Context) string {
	if d.goos != "windows" {
		return d.goos
	}
	name, err := d.uname(ctx)
	if err == nil && strings.HasPrefix(strings.ToUpper(strings.TrimSpace(name)), "CYGWIN") {
		return Cygwin
	}
	return d.goos
}

func uname(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "uname", "-s").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
