// Package descriptor assembles the make descriptor handed to the build tool.
package descriptor

import (
	"context"

	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Assembler prepends generated definitions to the static template.
type Assembler struct {
	workspace ports.Workspace
	logger    ports.Logger
	settings  domain.Settings
}

// NewAssembler creates an Assembler for the template and descriptor paths in settings.
func NewAssembler(workspace ports.Workspace, logger ports.Logger, settings domain.Settings) *Assembler {
	return &Assembler{
		workspace: workspace,
		logger:    logger,
		settings:  settings,
	}
}

// BuildFlags returns the baseline feature flags, extended with the flags
// registered for platform if there are any.
func (a *Assembler) BuildFlags(platform string) domain.FeatureFlags {
	flags := domain.FeatureFlags{
		Baseline: append([]string(nil), a.settings.FeatureFlags...),
	}
	if extra, ok := a.settings.PlatformFlags[platform]; ok && len(extra) > 0 {
		flags.Platform = append([]string(nil), extra...)
	}
	return flags
}

// Compose builds the descriptor without touching the filesystem.
func Compose(choice domain.CompilerChoice, flags domain.FeatureFlags, template []string) domain.Descriptor {
	return domain.Descriptor{
		Compiler: choice,
		Flags:    flags,
		Template: template,
	}
}

// Load reads the template and composes the descriptor for choice and platform.
func (a *Assembler) Load(choice domain.CompilerChoice, platform string) (domain.Descriptor, error) {
	path := a.settings.TemplatePath
	template, err := a.workspace.ReadLines(path)
	if err != nil {
		return domain.Descriptor{}, zerr.WithStack(
			zerr.With(zerr.Wrap(err, domain.ErrTemplateRead.Error()), "path", path),
		)
	}
	return Compose(choice, a.BuildFlags(platform), template), nil
}

// Assemble reads the template, composes the descriptor and writes it to the
// descriptor path, replacing whatever is there. Nothing is written when the
// template cannot be read.
func (a *Assembler) Assemble(_ context.Context, choice domain.CompilerChoice, platform string) (domain.Descriptor, error) {
	d, err := a.Load(choice, platform)
	if err != nil {
		return domain.Descriptor{}, err
	}

	path := a.settings.DescriptorPath
	if err := a.workspace.WriteLines(path, d.Lines()); err != nil {
		return domain.Descriptor{}, zerr.With(zerr.Wrap(err, domain.ErrDescriptorWrite.Error()), "path", path)
	}

	a.logger.Debug("descriptor written",
		"path", path,
		"template_lines", len(d.Template),
		"digest", d.Digest(),
	)
	return d, nil
}
