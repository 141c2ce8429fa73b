package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tribuild/internal/adapters/fs"
)

func TestWorkspace_ReadLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"trailing newline", "CFLAGS=-c\nall: lib\n", []string{"CFLAGS=-c", "all: lib"}},
		{"no trailing newline", "RULE: $(CC) build.c", []string{"RULE: $(CC) build.c"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf kept", "a\r\nb\r\n", []string{"a\r", "b\r"}},
		{"tabs kept", "lib:\n\t$(CC) -c x.c\n", []string{"lib:", "\t$(CC) -c x.c"}},
		{"empty file", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, "makefile.input"), []byte(tt.content), 0o600))

			lines, err := fs.NewWorkspace(root).ReadLines("makefile.input")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestWorkspace_ReadLines_Missing(t *testing.T) {
	_, err := fs.NewWorkspace(t.TempDir()).ReadLines("src/makefile.input")

	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestWorkspace_WriteLines(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	ws := fs.NewWorkspace(root)

	require.NoError(t, ws.WriteLines("./src/makefile.tmp", []string{"old", "content", "longer"}))
	require.NoError(t, ws.WriteLines("./src/makefile.tmp", []string{"CC=g++", "all:"}))

	data, err := os.ReadFile(filepath.Join(root, "src", "makefile.tmp"))
	require.NoError(t, err)
	assert.Equal(t, "CC=g++\nall:\n", string(data))
}

func TestWorkspace_WriteLines_MissingDirectory(t *testing.T) {
	err := fs.NewWorkspace(t.TempDir()).WriteLines("missing/makefile.tmp", []string{"all:"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestWorkspace_RoundTrip(t *testing.T) {
	root := t.TempDir()
	ws := fs.NewWorkspace(root)
	lines := []string{"#--------------------------", "CC=", "", "\tcc -c x.c"}

	require.NoError(t, ws.WriteLines("descriptor.mk", lines))
	got, err := ws.ReadLines(filepath.Join(root, "descriptor.mk"))
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestWorkspace_CRLFTemplateCopiedVerbatim(t *testing.T) {
	root := t.TempDir()
	ws := fs.NewWorkspace(root)
	template := "RULE: $(CC) build.c\r\nall:\r\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "makefile.input"), []byte(template), 0o600))

	lines, err := ws.ReadLines("makefile.input")
	require.NoError(t, err)

	header := []string{"#--------------------------", "CC=g++", "#--------------------------"}
	require.NoError(t, ws.WriteLines("makefile.tmp", append(header, lines...)))

	data, err := os.ReadFile(filepath.Join(root, "makefile.tmp"))
	require.NoError(t, err)
	assert.Equal(t, "#--------------------------\nCC=g++\n#--------------------------\n"+template, string(data))
}
