package dot

import (
	"testing"

	"github.com/retroenv/intcfg/internal/cfg"
	"github.com/retroenv/intcfg/internal/intcode"
	"github.com/retroenv/retrogolib/assert"
)

func TestBlockLabelColored(t *testing.T) {
	// out@0 with an immediate argument, hlt@2
	graph := cfg.Build(intcode.Decode([]int64{104, 5, 99}))
	assert.Len(t, graph.Blocks, 1)

	label := BlockLabel(graph.Blocks[0], true)

	expected := `<font color="blue4"><font color="gray50">   0:</font>  ` +
		`<font color="blue3">out </font> <font color="blue3">      5 </font></font>` +
		`<br align="left"/>` +
		`<font color="blue4"><font color="gray50">   2:</font>  ` +
		`<font color="blue3">hlt </font></font><br align="left"/>`
	assert.Equal(t, expected, label)
}

func TestBlockLabelArgumentModes(t *testing.T) {
	// add@0 with positional, immediate and relative arguments
	graph := cfg.Build(intcode.Decode([]int64{21001, 4, -3, 4, 99}))
	assert.Len(t, graph.Blocks, 1)

	label := BlockLabel(graph.Blocks[0], true)

	assert.Contains(t, label, `<font color="indigo">     [4]</font>`)
	assert.Contains(t, label, `<font color="blue3">     -3 </font>`)
	assert.Contains(t, label, `<font color="purple">   [r+4]</font>`)
}

func TestBlockLabelUnknownCell(t *testing.T) {
	graph := cfg.Build(intcode.Decode([]int64{42}))
	assert.Len(t, graph.Blocks, 1)

	label := BlockLabel(graph.Blocks[0], true)

	expected := `<font color="blue4"><font color="gray50">   0:</font>  ` +
		`<font color="crimson">??? </font></font> <font color="gray">42</font>` +
		`<br align="left"/>`
	assert.Equal(t, expected, label)
}

func TestBlockLabelPlain(t *testing.T) {
	graph := cfg.Build(intcode.Decode([]int64{104, 5, 99}))
	assert.Len(t, graph.Blocks, 1)

	label := BlockLabel(graph.Blocks[0], false)

	expected := `   0:  out        5 <br align="left"/>` +
		`   2:  hlt <br align="left"/>`
	assert.Equal(t, expected, label)
}
