// Package loader handles intcode program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyProgram is returned when the input contains no memory cells.
var ErrEmptyProgram = errors.New("program contains no memory cells")

// Load reads and parses an intcode program file.
func Load(path string) ([]int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	program, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return program, nil
}

// Parse reads an intcode program, a single list of integers separated by
// commas. Whitespace around the cells is ignored.
func Parse(reader io.Reader) ([]int64, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, ErrEmptyProgram
	}

	cells := strings.Split(text, ",")
	program := make([]int64, 0, len(cells))

	for i, cell := range cells {
		value, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing cell %d, make sure the file only "+
				"contains a list of integers separated by commas: %w", i, err)
		}
		program = append(program, value)
	}
	return program, nil
}
