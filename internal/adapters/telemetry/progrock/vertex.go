package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var errInterrupted = zerr.New("stage interrupted before completion")

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	name   string
	vertex *progrock.VertexRecorder
	logger ports.Logger
	done   func()
	once   sync.Once
}

// Stdout returns the vertex's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex's error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes a leveled line into the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex finished. Only the first call has any effect.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.vertex.Done(err)
		if err != nil {
			v.logger.Debug("stage failed", "stage", v.name, "error", err.Error())
		} else {
			v.logger.Debug("stage completed", "stage", v.name)
		}
		if v.done != nil {
			v.done()
		}
	})
}
