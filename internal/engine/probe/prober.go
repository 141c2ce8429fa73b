// Package probe selects the compiler used to build the library.
package probe

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
)

// Prober checks the host for candidate compilers.
type Prober struct {
	process    ports.Process
	logger     ports.Logger
	candidates []domain.Candidate
	fallback   string
	out        io.Writer
}

// NewProber creates a Prober that checks candidates in order and reports the
// selection on out. fallback is the optimization flag set used when none of
// the candidates is found.
func NewProber(
	process ports.Process,
	logger ports.Logger,
	candidates []domain.Candidate,
	fallback string,
	out io.Writer,
) *Prober {
	return &Prober{
		process:    process,
		logger:     logger,
		candidates: candidates,
		fallback:   fallback,
		out:        out,
	}
}

// SelectCompiler probes every candidate in order. Each resolvable candidate
// replaces the previous selection, so the last one found wins. Finding none
// is not an error: the choice then has an empty name.
func (p *Prober) SelectCompiler(_ context.Context) domain.CompilerChoice {
	choice := domain.CompilerChoice{OptimizationFlags: p.fallback}

	for _, c := range p.candidates {
		found := p.process.Resolvable(c.Name)
		p.logger.Debug("probed compiler", "compiler", c.Name, "found", found)
		if found {
			choice = domain.CompilerChoice{Name: c.Name, OptimizationFlags: c.OptimizationFlags}
		}
	}

	if !choice.Found() {
		p.logger.Debug("no candidate compiler found on PATH")
	}

	_, _ = fmt.Fprintf(p.out, " Compiler Selected      ...  %s\n", choice.Name)
	return choice
}
