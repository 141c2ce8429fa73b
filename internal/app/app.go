// Package app implements the application layer for tribuild.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
	"go.trai.ch/tribuild/internal/engine/descriptor"
	"go.trai.ch/tribuild/internal/engine/driver"
	"go.trai.ch/tribuild/internal/engine/probe"
	"go.trai.ch/zerr"
)

// App sequences compiler probing, descriptor assembly and the build.
type App struct {
	loader    ports.SettingsLoader
	process   ports.Process
	workspace ports.Workspace
	platform  ports.PlatformDetector
	telemetry ports.Telemetry
	logger    ports.Logger
	stdout    io.Writer
}

// RunOptions contains the command-line overrides for a run.
type RunOptions struct {
	// ConfigPath selects a settings file; empty means the default lookup.
	ConfigPath string
	// Strict surfaces a failed build as an error.
	Strict bool
	// Platform overrides host platform detection.
	Platform string
}

// New creates a new App instance writing status lines to stdout.
func New(
	loader ports.SettingsLoader,
	process ports.Process,
	workspace ports.Workspace,
	platform ports.PlatformDetector,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		process:   process,
		workspace: workspace,
		platform:  platform,
		telemetry: telemetry,
		logger:    logger,
		stdout:    os.Stdout,
	}
}

// WithOutput sets the writer that receives status lines.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// Run probes for a compiler, writes the descriptor, builds and cleans up.
// A template that cannot be read aborts the run before anything is written.
// The build's exit status only becomes an error in strict mode.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	settings, platform, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}

	choice := a.selectCompiler(ctx, settings, a.stdout)

	actx, assembling := a.telemetry.Record(ctx, domain.StageAssembling.String())
	d, err := descriptor.NewAssembler(a.workspace, a.logger, settings).Assemble(actx, choice, platform)
	if err != nil {
		assembling.Complete(err)
		return err
	}
	assembling.Log(domain.LogLevelDebug, "descriptor "+d.Digest())
	assembling.Complete(nil)

	bctx, building := a.telemetry.Record(ctx, domain.StageBuilding.String())
	result := driver.NewDriver(a.process, a.logger, settings, a.stdout).RunBuild(bctx, settings.DescriptorPath)
	var buildErr error
	if !result.Succeeded() {
		buildErr = zerr.With(zerr.Wrap(domain.ErrBuildFailed, settings.BuildTool), "exit_code", result.ExitCode)
	}
	building.Complete(buildErr)

	_, done := a.telemetry.Record(ctx, domain.StageDone.String())
	done.Complete(nil)

	if buildErr != nil {
		if settings.Strict {
			return buildErr
		}
		a.logger.Info("build failure ignored", "exit_code", result.ExitCode, "removed", result.Removed)
	}
	return nil
}

// Probe reports the compiler a run would select. No files are touched.
func (a *App) Probe(ctx context.Context, opts RunOptions) (domain.CompilerChoice, error) {
	settings, _, err := a.prepare(ctx, opts)
	if err != nil {
		return domain.CompilerChoice{}, err
	}
	return a.selectCompiler(ctx, settings, a.stdout), nil
}

// Render writes the descriptor a run would generate to w, without writing it
// to the descriptor path or building.
func (a *App) Render(ctx context.Context, opts RunOptions, w io.Writer) error {
	settings, platform, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}

	choice := a.selectCompiler(ctx, settings, io.Discard)

	_, assembling := a.telemetry.Record(ctx, domain.StageAssembling.String())
	d, err := descriptor.NewAssembler(a.workspace, a.logger, settings).Load(choice, platform)
	assembling.Complete(err)
	if err != nil {
		return err
	}

	if _, err := w.Write(d.Bytes()); err != nil {
		return zerr.Wrap(err, "failed to render descriptor")
	}
	return nil
}

// Close flushes the telemetry recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) prepare(ctx context.Context, opts RunOptions) (domain.Settings, string, error) {
	settings, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, "", zerr.Wrap(err, "failed to load settings")
	}

	if opts.Strict {
		settings.Strict = true
	}
	if opts.Platform != "" {
		settings.Platform = opts.Platform
	}

	platform := settings.Platform
	if platform == "" {
		platform = a.platform.Detect(ctx)
	}
	a.logger.Debug("settings resolved", "platform", platform, "strict", settings.Strict)
	return settings, platform, nil
}

func (a *App) selectCompiler(ctx context.Context, settings domain.Settings, out io.Writer) domain.CompilerChoice {
	pctx, probing := a.telemetry.Record(ctx, domain.StageProbing.String())
	choice := probe.NewProber(
		a.process,
		a.logger,
		settings.Compilers,
		settings.DefaultOptimizationFlags,
		out,
	).SelectCompiler(pctx)
	probing.Complete(nil)
	return choice
}
