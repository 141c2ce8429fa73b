package domain

import "go.trai.ch/zerr"

var (
	// ErrTemplateRead is returned when the static descriptor template cannot be read.
	ErrTemplateRead = zerr.New("failed to read descriptor template")

	// ErrDescriptorWrite is returned when the generated descriptor cannot be written.
	ErrDescriptorWrite = zerr.New("failed to write build descriptor")

	// ErrBuildFailed is returned in strict mode when the build tool exits with a non-zero status.
	ErrBuildFailed = zerr.New("build tool reported failure")

	// ErrConfigReadFailed is returned when an explicitly requested settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when a settings file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidSettings is returned when the merged settings cannot drive a build.
	ErrInvalidSettings = zerr.New("invalid settings")
)
