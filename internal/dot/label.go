// Package dot renders a control flow graph as a Graphviz dot document.
package dot

import (
	"fmt"
	"strings"

	"github.com/retroenv/intcfg/internal/cfg"
	"github.com/retroenv/intcfg/internal/intcode"
)

// Label colors of the disassembly in the HTML-like block labels.
const (
	colorDefault    = "blue4"
	colorAddress    = "gray50"
	colorMnemonic   = "blue3"
	colorUnknown    = "crimson"
	colorRawValue   = "gray"
	colorImmediate  = "blue3"
	colorPositional = "indigo"
	colorRelative   = "purple"
)

// BlockLabel renders the disassembly of a block as an HTML-like label, one
// left-aligned line per instruction with the address, mnemonic and arguments
// colored by their role and addressing mode.
func BlockLabel(block cfg.Block, colorize bool) string {
	var sb strings.Builder
	for _, ins := range block.Instructions {
		if colorize {
			writeColoredLine(&sb, ins)
		} else {
			writePlainLine(&sb, ins)
		}
		sb.WriteString(`<br align="left"/>`)
	}
	return sb.String()
}

func writeColoredLine(sb *strings.Builder, ins intcode.Instruction) {
	mnemonicColor := colorMnemonic
	raw := ""
	if unknown, ok := ins.(intcode.Unknown); ok {
		mnemonicColor = colorUnknown
		raw = fmt.Sprintf(" <font color=%q>%d</font>", colorRawValue, unknown.Value())
	}

	fmt.Fprintf(sb, "<font color=%q>", colorDefault)
	fmt.Fprintf(sb, "<font color=%q>%4d:</font>  ", colorAddress, ins.Address())
	fmt.Fprintf(sb, "<font color=%q>%-4s</font>", mnemonicColor, ins.Name())
	for _, arg := range ins.Args() {
		fmt.Fprintf(sb, " <font color=%q>%8s</font>", argColor(arg.Mode), formatArg(arg))
	}
	sb.WriteString("</font>")
	sb.WriteString(raw)
}

func writePlainLine(sb *strings.Builder, ins intcode.Instruction) {
	fmt.Fprintf(sb, "%4d:  %-4s", ins.Address(), ins.Name())
	for _, arg := range ins.Args() {
		fmt.Fprintf(sb, " %8s", formatArg(arg))
	}
	if unknown, ok := ins.(intcode.Unknown); ok {
		fmt.Fprintf(sb, " %d", unknown.Value())
	}
}

// formatArg formats an argument based on its addressing mode: a plain value
// for immediate mode, a memory dereference for positional mode and a
// relative base offset dereference for relative mode.
func formatArg(arg intcode.Arg) string {
	switch arg.Mode {
	case intcode.ImmediateAddressing:
		return fmt.Sprintf("%d ", arg.Value)
	case intcode.PositionalAddressing:
		return fmt.Sprintf("[%d]", arg.Value)
	default:
		return fmt.Sprintf("[r%+d]", arg.Value)
	}
}

func argColor(mode intcode.AddressingMode) string {
	switch mode {
	case intcode.ImmediateAddressing:
		return colorImmediate
	case intcode.PositionalAddressing:
		return colorPositional
	default:
		return colorRelative
	}
}
