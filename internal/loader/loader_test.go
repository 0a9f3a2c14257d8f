package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{
			name:  "simple program",
			input: "1,2,3",
			want:  []int64{1, 2, 3},
		},
		{
			name:  "whitespace around cells",
			input: " 1 , 2 ,3\n",
			want:  []int64{1, 2, 3},
		},
		{
			name:  "negative cells",
			input: "1105,-1,0,99",
			want:  []int64{1105, -1, 0, 99},
		},
		{
			name:  "single cell",
			input: "99",
			want:  []int64{99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := Parse(strings.NewReader(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, program)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "whitespace only", input: " \n "},
		{name: "non numeric cell", input: "1,a,3"},
		{name: "trailing comma", input: "1,2,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseEmptyProgram(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Equal(t, ErrEmptyProgram, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.txt")
	assert.NoError(t, os.WriteFile(path, []byte("1105,1,0,99\n"), 0o644))

	program, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1105, 1, 0, 99}, program)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
