// Package shell provides the process adapter used to probe, build and clean up.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/tribuild/internal/core/ports"
)

// RemoveCommand is the external command used to delete the descriptor.
const RemoveCommand = "rm"

// Executor implements ports.Process using os/exec.
type Executor struct {
	logger ports.Logger
	env    []string
	dir    string
	stdout io.Writer
	stderr io.Writer
}

var _ ports.Process = (*Executor)(nil)

// Option configures an Executor.
type Option func(*Executor)

// WithEnv replaces the environment used for lookups and child processes.
func WithEnv(env []string) Option {
	return func(e *Executor) { e.env = env }
}

// WithDir sets the working directory of child processes.
func WithDir(dir string) Option {
	return func(e *Executor) { e.dir = dir }
}

// WithOutput sets where child process output is streamed.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewExecutor creates a new Executor inheriting the current environment and
// streaming child output to the console.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger: logger,
		env:    os.Environ(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolvable reports whether name is an executable on the PATH of the
// executor's environment. Names containing a path separator are checked directly.
func (e *Executor) Resolvable(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return findExecutable(name, runtime.GOOS) == nil
	}
	_, err := lookPath(name, e.env, runtime.GOOS)
	return err == nil
}

// Run executes name with args and returns its exit code. Output is streamed,
// and teed into the vertex carried by ctx if there is one.
func (e *Executor) Run(ctx context.Context, name string, args []string) int {
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, e.env, runtime.GOOS); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from settings

	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = e.dir
	cmd.Env = e.env
	cmd.Stdout, cmd.Stderr = e.streams(ctx)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		e.logger.Debug("command failed", "command", name, "exit_code", exitCode, "error", err)
		return exitCode
	}
	return 0
}

// Remove deletes path by running the external removal command.
func (e *Executor) Remove(ctx context.Context, path string) bool {
	return e.Run(ctx, RemoveCommand, []string{path}) == 0
}

func (e *Executor) streams(ctx context.Context) (io.Writer, io.Writer) {
	v, ok := ports.VertexFromContext(ctx)
	if !ok {
		return e.stdout, e.stderr
	}
	return io.MultiWriter(e.stdout, v.Stdout()), io.MultiWriter(e.stderr, v.Stderr())
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env. On Windows the entry name is matched case-insensitively and
// the extensions listed in PATHEXT are tried.
func lookPath(file string, env []string, goos string) (string, error) {
	path := envValue(env, "PATH", goos)
	if path == "" {
		return "", exec.ErrNotFound
	}

	exts := []string{""}
	if goos == "windows" {
		exts = pathExts(env)
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, ext := range exts {
			candidate := filepath.Join(dir, file+ext)
			if err := findExecutable(candidate, goos); err == nil {
				return candidate, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

func envValue(env []string, key, goos string) string {
	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == key || (goos == "windows" && strings.EqualFold(k, key)) {
			return v
		}
	}
	return ""
}

func pathExts(env []string) []string {
	list := envValue(env, "PATHEXT", "windows")
	if list == "" {
		list = ".com;.exe;.bat;.cmd"
	}
	exts := []string{""}
	for _, ext := range strings.Split(list, ";") {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	return exts
}

func findExecutable(file, goos string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if goos == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
