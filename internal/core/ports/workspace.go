package ports

// Workspace reads the descriptor template and writes the generated descriptor.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// ReadLines returns the file at path as lines without their terminators.
	ReadLines(path string) ([]string, error)

	// WriteLines replaces the file at path with lines, each newline-terminated.
	WriteLines(path string, lines []string) error
}
