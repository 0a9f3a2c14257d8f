package intcode

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestJumpTarget(t *testing.T) {
	tests := []struct {
		name       string
		program    []int64
		wantTarget int64
		wantKnown  bool
	}{
		{
			name:       "jnz immediate target",
			program:    []int64{1105, 1, 7, 99},
			wantTarget: 7,
			wantKnown:  true,
		},
		{
			name:       "jz immediate target",
			program:    []int64{1106, 0, 3, 99},
			wantTarget: 3,
			wantKnown:  true,
		},
		{
			name:      "jnz positional target",
			program:   []int64{105, 1, 3, 99},
			wantKnown: false,
		},
		{
			name:      "jnz relative target",
			program:   []int64{2105, 1, 3, 99},
			wantKnown: false,
		},
		{
			name:      "non-jump instruction",
			program:   []int64{1101, 2, 3, 0, 99},
			wantKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instructions := Decode(tt.program)

			target, known := instructions[0].JumpTarget()
			assert.Equal(t, tt.wantKnown, known)
			if tt.wantKnown {
				assert.Equal(t, tt.wantTarget, target)
			}
		})
	}
}

func TestInstructionClassification(t *testing.T) {
	// jnz@0, jz@3, hlt@6, add@7
	program := []int64{1105, 1, 0, 1106, 0, 0, 99, 1101, 2, 3, 0}

	instructions := Decode(program)
	assert.Len(t, instructions, 4)

	assert.True(t, instructions[0].IsConditionalJump())
	assert.True(t, instructions[1].IsConditionalJump())
	assert.False(t, instructions[2].IsConditionalJump())
	assert.False(t, instructions[3].IsConditionalJump())

	assert.True(t, instructions[2].IsHalt())
	assert.False(t, instructions[0].IsHalt())
	assert.False(t, instructions[3].IsHalt())
}
