package driver_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tribuild/internal/adapters/logger"
	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports/mocks"
	"go.trai.ch/tribuild/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

const descriptorPath = "./src/makefile.tmp"

func TestDriver_RunBuild(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		removed  bool
	}{
		{"build succeeds", 0, true},
		{"build fails", 2, true},
		{"build tool missing", -1, true},
		{"cleanup fails", 0, false},
		{"build and cleanup fail", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProcess := mocks.NewMockProcess(ctrl)
			gomock.InOrder(
				mockProcess.EXPECT().
					Run(gomock.Any(), "make", []string{"--quiet", "-f", descriptorPath}).
					Return(tt.exitCode),
				mockProcess.EXPECT().Remove(gomock.Any(), descriptorPath).Return(tt.removed),
			)

			var out bytes.Buffer
			d := driver.NewDriver(mockProcess, logger.NewWithWriter(io.Discard), domain.DefaultSettings(), &out)

			result := d.RunBuild(context.Background(), descriptorPath)

			assert.Equal(t, domain.BuildResult{ExitCode: tt.exitCode, Removed: tt.removed}, result)
			// Same console trace whatever the outcome.
			assert.Equal(t, " Compiling Triangle++   ...\nDone.\n", out.String())
		})
	}
}

func TestDriver_ArgsWithoutQuietFlag(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.QuietFlag = ""

	d := driver.NewDriver(nil, logger.NewWithWriter(io.Discard), settings, io.Discard)

	assert.Equal(t, []string{"-f", "build.mk"}, d.Args("build.mk"))
}
