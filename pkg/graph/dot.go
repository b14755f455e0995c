package graph

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT renders the graph in Graphviz DOT syntax. Nodes are labeled with
// their display form; sinks are drawn as boxes and annotated with their
// destinations. Edges point from producer to consumer and carry the slot
// name.
func WriteDOT(w io.Writer, g *Graph) error {
	var b strings.Builder
	b.WriteString("digraph build {\n")
	b.WriteString("  rankdir=BT;\n")
	b.WriteString("  node [fontname=\"monospace\" fontsize=10];\n")

	for _, n := range g.TopoOrder() {
		label := dotEscape(n.Display)
		if n.Sink {
			label += "\\n" + dotEscape(strings.Join(n.Destinations, "\\n"))
			fmt.Fprintf(&b, "  %q [label=\"%s\" shape=box style=filled fillcolor=lightgrey];\n",
				n.Key, label)
		} else {
			fmt.Fprintf(&b, "  %q [label=\"%s\" shape=ellipse];\n", n.Key, label)
		}
	}
	for _, n := range g.TopoOrder() {
		for slot, depKey := range n.Inputs {
			fmt.Fprintf(&b, "  %q -> %q [label=%q fontsize=8];\n", depKey, n.Key, slot)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
