// Package driver runs the external build tool against a descriptor.
package driver

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
)

// Driver invokes the build tool once and always removes the descriptor afterwards.
type Driver struct {
	process  ports.Process
	logger   ports.Logger
	settings domain.Settings
	out      io.Writer
}

// NewDriver creates a Driver that reports progress on out.
func NewDriver(process ports.Process, logger ports.Logger, settings domain.Settings, out io.Writer) *Driver {
	return &Driver{
		process:  process,
		logger:   logger,
		settings: settings,
		out:      out,
	}
}

// Args returns the build tool arguments for descriptorPath.
func (d *Driver) Args(descriptorPath string) []string {
	var args []string
	if d.settings.QuietFlag != "" {
		args = append(args, d.settings.QuietFlag)
	}
	return append(args, d.settings.FileFlag, descriptorPath)
}

// RunBuild invokes the build tool, then removes the descriptor. Removal is
// attempted whatever the build outcome, and neither status changes the
// control flow: both are only reported in the result.
func (d *Driver) RunBuild(ctx context.Context, descriptorPath string) domain.BuildResult {
	_, _ = fmt.Fprintf(d.out, " Compiling %-12s ...\n", d.settings.Library)

	exitCode := d.process.Run(ctx, d.settings.BuildTool, d.Args(descriptorPath))
	d.logger.Debug("build tool finished", "tool", d.settings.BuildTool, "exit_code", exitCode)

	removed := d.process.Remove(ctx, descriptorPath)
	if !removed {
		d.logger.Debug("descriptor cleanup failed", "path", descriptorPath)
	}

	_, _ = fmt.Fprintln(d.out, "Done.")
	return domain.BuildResult{ExitCode: exitCode, Removed: removed}
}
