// Package config provides the settings loader for tribuild.
package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up when no path is given.
const DefaultFilename = "tribuild.yaml"

//go:embed defaults.yaml
var defaultsYAML []byte

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new settings loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load returns the built-in settings overlaid with the file at path. With an
// empty path, DefaultFilename is used if it exists.
func (l *Loader) Load(path string) (domain.Settings, error) {
	file, err := defaults()
	if err != nil {
		return domain.Settings{}, err
	}

	implicit := path == ""
	if implicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		l.logger.Debug("settings loaded", "path", path)
	case implicit && errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no settings file, using built-in settings", "path", path)
	default:
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	settings := file.toSettings()
	if err := Validate(settings); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

// Defaults returns the built-in settings.
func Defaults() (domain.Settings, error) {
	file, err := defaults()
	if err != nil {
		return domain.Settings{}, err
	}
	return file.toSettings(), nil
}

func defaults() (Tribuildfile, error) {
	var file Tribuildfile
	if err := yaml.Unmarshal(defaultsYAML, &file); err != nil {
		return Tribuildfile{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return file, nil
}

// Validate reports the first setting that would prevent a build.
func Validate(s domain.Settings) error {
	required := []struct {
		field string
		value string
	}{
		{"template", s.TemplatePath},
		{"descriptor", s.DescriptorPath},
		{"build.tool", s.BuildTool},
		{"build.fileFlag", s.FileFlag},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "missing required setting"), "field", r.field)
		}
	}

	if filepath.Clean(s.TemplatePath) == filepath.Clean(s.DescriptorPath) {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidSettings, "descriptor would overwrite the template"),
			"field", "descriptor",
		)
	}

	for i, c := range s.Compilers {
		if c.Name == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "compiler without a name"), "index", i)
		}
	}
	return nil
}

func (f Tribuildfile) toSettings() domain.Settings {
	compilers := make([]domain.Candidate, len(f.Compilers))
	for i, c := range f.Compilers {
		compilers[i] = domain.Candidate{Name: c.Name, OptimizationFlags: c.Optimization}
	}

	platformFlags := make(map[string][]string, len(f.PlatformFlags))
	for platform, flags := range f.PlatformFlags {
		platformFlags[platform] = append([]string(nil), flags...)
	}

	return domain.Settings{
		Library:                  f.Library,
		TemplatePath:             f.Template,
		DescriptorPath:           f.Descriptor,
		BuildTool:                f.Build.Tool,
		QuietFlag:                f.Build.QuietFlag,
		FileFlag:                 f.Build.FileFlag,
		Compilers:                compilers,
		DefaultOptimizationFlags: f.DefaultOptimization,
		FeatureFlags:             append([]string(nil), f.FeatureFlags...),
		PlatformFlags:            platformFlags,
		Platform:                 f.Platform,
		Strict:                   f.Strict,
	}
}
