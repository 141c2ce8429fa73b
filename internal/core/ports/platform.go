package ports

import "context"

// PlatformDetector identifies the host platform the library is built on.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformDetector interface {
	// Detect returns the host platform identifier, e.g. "linux" or "cygwin".
	Detect(ctx context.Context) string
}
