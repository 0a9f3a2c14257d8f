package intcode

// Decode disassembles a program image linearly, starting at address 0 and
// advancing by each instruction's length until the end of the image is
// reached. Cells that do not decode to a known opcode, carry an invalid
// addressing mode digit or whose arguments would extend past the end of
// the image decode as Unknown cells of length 1.
func Decode(program []int64) []Instruction {
	instructions := make([]Instruction, 0, len(program)/2)

	for address := int64(0); address < int64(len(program)); {
		ins := decodeAt(program, address)
		instructions = append(instructions, ins)
		address += ins.Length()
	}
	return instructions
}

func decodeAt(program []int64, address int64) Instruction {
	cell := program[address]
	unknown := Unknown{address: address, value: cell}

	if cell < 0 {
		return unknown
	}
	opcode, ok := Opcodes[cell%100]
	if !ok {
		return unknown
	}
	if address+int64(opcode.Args) >= int64(len(program)) {
		return unknown // arguments would run past the end of the image
	}

	args := make([]Arg, opcode.Args)
	modes := cell / 100
	for i := range args {
		mode := AddressingMode(modes % 10)
		if mode > RelativeAddressing {
			return unknown
		}
		args[i] = Arg{
			Value: program[address+opcodeSize+int64(i)],
			Mode:  mode,
		}
		modes /= 10
	}
	return Operation{
		opcode:  opcode,
		address: address,
		args:    args,
	}
}
