// Package progrock records run stages on a progrock tape.
package progrock

import (
	"context"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/tribuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
// Vertex lifecycles are mirrored to the logger at debug level.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger

	mu   sync.Mutex
	open map[string]*Vertex
}

// New creates a Recorder writing to an in-memory tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: logger,
		open:   make(map[string]*Vertex),
	}
}

// Record starts a vertex named after a run stage.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{
		name:   name,
		vertex: r.rec.Vertex(digest.FromString("tribuild/"+name), name),
		logger: r.logger,
	}
	v.done = func() { r.release(name) }

	r.mu.Lock()
	r.open[name] = v
	r.mu.Unlock()

	r.logger.Debug("stage started", "stage", name)
	return ports.ContextWithVertex(ctx, v), v
}

// Close completes vertices left open by an aborted run, then closes the writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	pending := make([]*Vertex, 0, len(r.open))
	for _, v := range r.open {
		pending = append(pending, v)
	}
	r.mu.Unlock()

	for _, v := range pending {
		v.Complete(errInterrupted)
	}

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Pending reports how many vertices have not been completed.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

func (r *Recorder) release(name string) {
	r.mu.Lock()
	delete(r.open, name)
	r.mu.Unlock()
}
