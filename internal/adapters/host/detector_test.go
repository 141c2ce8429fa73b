package host_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tribuild/internal/adapters/host"
)

func fixedUname(name string, err error) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return name, err }
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		uname    string
		err      error
		expected string
	}{
		{"linux", "linux", "", nil, "linux"},
		{"darwin ignores uname", "darwin", "CYGWIN_NT-10.0", nil, "darwin"},
		{"windows under cygwin", "windows", "CYGWIN_NT-10.0-19045\n", nil, host.Cygwin},
		{"windows under msys", "windows", "MSYS_NT-10.0", nil, "windows"},
		{"windows without uname", "windows", "", errors.New("not found"), "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := host.NewDetectorFor(tt.goos, fixedUname(tt.uname, tt.err))
			assert.Equal(t, tt.expected, d.Detect(context.Background()))
		})
	}
}

func TestNewDetector(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("result depends on the Windows environment")
	}
	assert.Equal(t, runtime.GOOS, host.NewDetector().Detect(context.Background()))
}
