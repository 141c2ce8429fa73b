// Package telemetry holds telemetry adapters that need no backing recorder.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
)

var _ ports.Telemetry = NoOp{}

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// Record returns ctx carrying a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (NoOp) Close() error { return nil }

// NoOpVertex discards output and completion.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoOpVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (NoOpVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (NoOpVertex) Complete(error) {}
