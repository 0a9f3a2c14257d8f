// Package intcode provides decoding of intcode programs into typed instructions.
package intcode

// Instruction represents a single decoded intcode instruction.
type Instruction interface {
	// Address returns the memory address the instruction starts at.
	Address() int64
	// Length returns the number of memory cells the instruction occupies.
	Length() int64
	// Name returns the instruction mnemonic.
	Name() string
	// Args returns the instruction arguments in program order.
	Args() []Arg
	// IsConditionalJump returns true if the instruction is a conditional jump.
	IsConditionalJump() bool
	// IsHalt returns true if the instruction halts the program.
	IsHalt() bool
	// JumpTarget returns the jump target address and whether it is statically
	// known. Only conditional jumps with an immediate mode target have one.
	JumpTarget() (int64, bool)
}

// Arg is an instruction argument with its addressing mode.
type Arg struct {
	Value int64
	Mode  AddressingMode
}

// Compile-time checks to ensure both instruction variants implement Instruction.
var (
	_ Instruction = Operation{}
	_ Instruction = Unknown{}
)

// Operation is an instruction with a valid opcode.
type Operation struct {
	opcode  Opcode
	address int64
	args    []Arg
}

// Address returns the memory address the instruction starts at.
func (o Operation) Address() int64 {
	return o.address
}

// Length returns the number of memory cells the instruction occupies.
func (o Operation) Length() int64 {
	return opcodeSize + int64(o.opcode.Args)
}

// Name returns the instruction mnemonic.
func (o Operation) Name() string {
	return o.opcode.Name
}

// Args returns the instruction arguments in program order.
func (o Operation) Args() []Arg {
	return o.args
}

// IsConditionalJump returns true if the instruction is a conditional jump.
func (o Operation) IsConditionalJump() bool {
	return o.opcode.ConditionalJump
}

// IsHalt returns true if the instruction halts the program.
func (o Operation) IsHalt() bool {
	return o.opcode.Halt
}

// JumpTarget returns the jump target address and whether it is statically
// known. Conditional jumps take the target as their second argument, its
// value is only known without executing the program in immediate mode.
func (o Operation) JumpTarget() (int64, bool) {
	if !o.opcode.ConditionalJump {
		return 0, false
	}
	target := o.args[1]
	if target.Mode != ImmediateAddressing {
		return 0, false
	}
	return target.Value, true
}

// Unknown is a memory cell that does not decode to a known opcode.
// It occupies a single cell and never affects control flow.
type Unknown struct {
	address int64
	value   int64
}

// Address returns the memory address of the cell.
func (u Unknown) Address() int64 {
	return u.address
}

// Length returns the number of memory cells the instruction occupies.
func (u Unknown) Length() int64 {
	return opcodeSize
}

// Name returns the instruction mnemonic.
func (u Unknown) Name() string {
	return "???"
}

// Args returns no arguments, the cell value is exposed by Value.
func (u Unknown) Args() []Arg {
	return nil
}

// IsConditionalJump returns false, unknown cells never branch.
func (u Unknown) IsConditionalJump() bool {
	return false
}

// IsHalt returns false, unknown cells never halt the program.
func (u Unknown) IsHalt() bool {
	return false
}

// JumpTarget returns no target, unknown cells never branch.
func (u Unknown) JumpTarget() (int64, bool) {
	return 0, false
}

// Value returns the raw memory cell value.
func (u Unknown) Value() int64 {
	return u.value
}
