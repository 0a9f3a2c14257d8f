package dot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"
	"github.com/retroenv/intcfg/internal/cfg"
	"github.com/retroenv/intcfg/internal/options"
)

// edgeColors maps every edge kind to its fixed color.
var edgeColors = map[cfg.EdgeKind]string{
	cfg.Unconditional: "grey30",
	cfg.True:          "green3",
	cfg.False:         "red",
}

// Node styling shared by all blocks.
const (
	nodeShape    = "box"
	nodeFontName = "monospace"
)

// Writer renders control flow graphs as Graphviz dot documents.
type Writer struct {
	options options.Converter
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options options.Converter) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write renders the graph as a dot document, one node per block showing its
// disassembly and one edge per control flow edge colored by its kind.
func (w *Writer) Write(graph cfg.Graph) error {
	g := dot.NewGraph(dot.Directed)

	nodes := make([]dot.Node, len(graph.Blocks))
	for i, block := range graph.Blocks {
		label := BlockLabel(block, !w.options.NoLabelColors)
		nodes[i] = g.Node(strconv.Itoa(block.ID)).
			Attr("shape", nodeShape).
			Attr("fontname", nodeFontName).
			Attr("label", dot.HTML(label))
	}

	for _, edge := range graph.Edges {
		g.Edge(nodes[edge.From], nodes[edge.To]).Attr("color", edgeColors[edge.Kind])
	}

	if _, err := io.WriteString(w.writer, g.String()); err != nil {
		return fmt.Errorf("writing dot document: %w", err)
	}
	return nil
}
