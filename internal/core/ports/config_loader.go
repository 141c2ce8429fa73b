package ports

import "go.trai.ch/tribuild/internal/core/domain"

// SettingsLoader defines the interface for loading the build settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the built-in settings overlaid with the file at path.
	// An empty path falls back to the default settings file name, whose
	// absence is not an error.
	Load(path string) (domain.Settings, error)
}
