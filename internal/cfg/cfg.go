// Package cfg partitions decoded intcode instructions into basic blocks
// and builds the control flow edges between them.
package cfg

import (
	"github.com/retroenv/intcfg/internal/intcode"
	"github.com/retroenv/retrogolib/set"
)

// EdgeKind classifies a control flow edge.
type EdgeKind int

// Edge kinds.
const (
	Unconditional EdgeKind = iota // fallthrough between blocks not ending in a branch
	True                          // taken branch of a conditional jump
	False                         // untaken branch of a conditional jump
)

// String implements the fmt.Stringer interface.
func (k EdgeKind) String() string {
	switch k {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unconditional"
	}
}

// Block is a maximal straight-line run of instructions entered only at its
// first instruction. Block IDs are dense and assigned in address order.
type Block struct {
	ID           int
	Instructions []intcode.Instruction
}

// Edge is a directed control flow edge between two blocks. Blocks are
// referenced by ID instead of holding block references.
type Edge struct {
	From int
	To   int
	Kind EdgeKind
}

// Graph is the control flow graph of a program.
type Graph struct {
	Blocks []Block
	Edges  []Edge
}

// Build partitions the instructions into basic blocks and constructs the
// control flow edges between them. The instruction sequence must not be
// empty, the caller has to guarantee a non-empty program image.
//
// Only conditional jumps with a statically known target end a block, jumps
// with a computed target are treated as straight-line instructions. A block
// that does not end in hlt always falls through to the next block in address
// order, whether or not program semantics can reach it that way. Jump
// targets that do not match the address of a decoded instruction produce no
// edge instead of an error.
func Build(instructions []intcode.Instruction) Graph {
	heads := markHeads(instructions)
	blocks, blockByAddress := partition(instructions, heads)
	return Graph{
		Blocks: blocks,
		Edges:  buildEdges(blocks, blockByAddress),
	}
}

// markHeads returns the set of addresses that start a basic block: the first
// instruction, every fallthrough successor of a block-ending jump and every
// resolvable jump target.
func markHeads(instructions []intcode.Instruction) set.Set[int64] {
	addresses := set.New[int64]()
	for _, ins := range instructions {
		addresses.Add(ins.Address())
	}

	heads := set.New[int64]()
	heads.Add(instructions[0].Address())

	for i, ins := range instructions {
		target, ok := ins.JumpTarget()
		if !ok {
			continue
		}
		if i+1 < len(instructions) {
			heads.Add(instructions[i+1].Address())
		}
		if addresses.Contains(target) {
			heads.Add(target)
		}
	}
	return heads
}

// partition groups the instructions into blocks, a new block starts at every
// head address. It returns the blocks and an index of instruction address to
// the ID of the owning block.
func partition(instructions []intcode.Instruction, heads set.Set[int64]) ([]Block, map[int64]int) {
	var blocks []Block
	blockByAddress := make(map[int64]int, len(instructions))

	for _, ins := range instructions {
		if heads.Contains(ins.Address()) {
			blocks = append(blocks, Block{ID: len(blocks)})
		}
		block := &blocks[len(blocks)-1]
		block.Instructions = append(block.Instructions, ins)
		blockByAddress[ins.Address()] = block.ID
	}
	return blocks, blockByAddress
}

// buildEdges scans consecutive block pairs and emits the outgoing edges of
// the earlier block: nothing for a hlt block, a true edge for a resolvable
// jump target and a fallthrough edge to the next block in address order.
func buildEdges(blocks []Block, blockByAddress map[int64]int) []Edge {
	var edges []Edge

	for i := 0; i+1 < len(blocks); i++ {
		block := blocks[i]
		last := block.Instructions[len(block.Instructions)-1]
		if last.IsHalt() {
			continue // a halt block has no successors
		}

		kind := Unconditional
		if target, ok := last.JumpTarget(); ok {
			if targetBlock, ok := blockByAddress[target]; ok {
				edges = append(edges, Edge{From: block.ID, To: targetBlock, Kind: True})
			}
			kind = False
		}

		edges = append(edges, Edge{From: block.ID, To: blocks[i+1].ID, Kind: kind})
	}
	return edges
}
