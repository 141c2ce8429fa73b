// Package fs provides the filesystem adapter for templates and descriptors.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/tribuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace relative to a root directory.
type Workspace struct {
	root string
}

// NewWorkspace creates a Workspace resolving relative paths against root.
// An empty root means the current working directory.
func NewWorkspace(root string) *Workspace {
	return &Workspace{root: root}
}

// ReadLines returns the lines of the file at path without their "\n"
// terminators. Any other byte, "\r" included, is kept. A trailing newline
// does not produce an empty final line.
func (w *Workspace) ReadLines(path string) ([]string, error) {
	full := w.resolve(path)
	data, err := os.ReadFile(full) //nolint:gosec // path comes from settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", full)
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	text := strings.TrimSuffix(string(data), "\n")
	return strings.Split(text, "\n"), nil
}

// WriteLines replaces the file at path with lines, each newline-terminated.
func (w *Workspace) WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	full := w.resolve(path)
	//nolint:gosec // descriptor must stay readable by the build tool
	if err := os.WriteFile(full, []byte(b.String()), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", full)
	}
	return nil
}

func (w *Workspace) resolve(path string) string {
	if w.root == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(w.root, path)
}
