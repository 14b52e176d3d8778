package reader

import (
	"fmt"
	"os"

	"github.com/funvibe/altlisp/internal/evaluator"
)

// Loader reads source files from disk for the load builtin.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile returns the top-level forms of the file at path.
func (l *Loader) LoadFile(path string) ([]evaluator.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	program, err := ReadString(string(data), path)
	if err != nil {
		return nil, err
	}
	return program.Cells, nil
}
