// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tribuild/internal/adapters/config"
	_ "go.trai.ch/tribuild/internal/adapters/fs"
	_ "go.trai.ch/tribuild/internal/adapters/host"
	_ "go.trai.ch/tribuild/internal/adapters/logger"
	_ "go.trai.ch/tribuild/internal/adapters/shell"
	_ "go.trai.ch/tribuild/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/tribuild/internal/app"
)
