package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tribuild/cmd/tribuild/commands"
	"go.trai.ch/tribuild/internal/app"
	"go.trai.ch/tribuild/internal/build"
	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	runFunc    func(ctx context.Context, opts app.RunOptions) error
	probeFunc  func(ctx context.Context, opts app.RunOptions) (domain.CompilerChoice, error)
	renderFunc func(ctx context.Context, opts app.RunOptions, w io.Writer) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Probe(ctx context.Context, opts app.RunOptions) (domain.CompilerChoice, error) {
	if m.probeFunc != nil {
		return m.probeFunc(ctx, opts)
	}
	return domain.CompilerChoice{}, nil
}

func (m *mockApp) Render(ctx context.Context, opts app.RunOptions, w io.Writer) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, opts, w)
	}
	return nil
}

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *mocks.MockLogger, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	cli := commands.New(a, log)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	return cli, log, buf
}

func TestCommands_Root(t *testing.T) {
	t.Run("builds with defaults", func(t *testing.T) {
		var captured app.RunOptions
		called := false
		cli, _, _ := newCLI(t, &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				called = true
				return nil
			},
		})
		cli.SetArgs([]string{})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, app.RunOptions{}, captured)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		cli, log, _ := newCLI(t, &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		})
		log.EXPECT().SetLevel(domain.LogLevelDebug)
		cli.SetArgs([]string{"--strict", "--platform", "cygwin", "-c", "custom.yaml", "-v"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{
			ConfigPath: "custom.yaml",
			Strict:     true,
			Platform:   "cygwin",
		}, captured)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		cli, _, _ := newCLI(t, &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return domain.ErrBuildFailed
			},
		})
		cli.SetArgs([]string{"--strict"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli, _, _ := newCLI(t, &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				panic("should not be called")
			},
		})
		cli.SetArgs([]string{"target"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Probe(t *testing.T) {
	var captured app.RunOptions
	cli, _, buf := newCLI(t, &mockApp{
		probeFunc: func(_ context.Context, opts app.RunOptions) (domain.CompilerChoice, error) {
			captured = opts
			return domain.CompilerChoice{Name: "g++", OptimizationFlags: "-O3"}, nil
		},
	})
	cli.SetArgs([]string{"probe", "--platform", "linux"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "linux", captured.Platform)
	assert.Equal(t, " Optimization Flags     ...  -O3\n", buf.String())
}

func TestCommands_Render(t *testing.T) {
	cli, _, buf := newCLI(t, &mockApp{
		renderFunc: func(_ context.Context, _ app.RunOptions, w io.Writer) error {
			_, err := w.Write([]byte("CC=g++\n"))
			return err
		},
	})
	cli.SetArgs([]string{"render"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "CC=g++\n", buf.String())
}

func TestCommands_Version(t *testing.T) {
	cli, _, buf := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "tribuild version "+build.Version)
}
