package intcode

// AddressingMode defines how an instruction argument is interpreted.
type AddressingMode int64

// Addressing modes of intcode arguments.
const (
	PositionalAddressing AddressingMode = iota // argument is a memory address
	ImmediateAddressing                        // argument is the value itself
	RelativeAddressing                         // argument is an offset to the relative base
)

// Opcode describes an intcode operation.
type Opcode struct {
	Name string // mnemonic
	Args int    // number of arguments following the opcode cell

	ConditionalJump bool
	Halt            bool
}

// opcodeSize is the number of memory cells the opcode itself occupies.
const opcodeSize = 1

// Opcodes maps opcode values to their operation info. The opcode value is
// the memory cell modulo 100, the remaining digits encode the addressing
// modes of the arguments.
var Opcodes = map[int64]Opcode{
	1:  {Name: "add", Args: 3},
	2:  {Name: "mul", Args: 3},
	3:  {Name: "in", Args: 1},
	4:  {Name: "out", Args: 1},
	5:  {Name: "jnz", Args: 2, ConditionalJump: true},
	6:  {Name: "jz", Args: 2, ConditionalJump: true},
	7:  {Name: "lt", Args: 3},
	8:  {Name: "eq", Args: 3},
	9:  {Name: "rel", Args: 1},
	99: {Name: "hlt", Halt: true},
}
