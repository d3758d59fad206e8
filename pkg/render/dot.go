package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gotsort/pkg/digraph"
)

// Options configures DOT generation.
type Options struct {
	// Rankdir sets the Graphviz layout direction: "TB", "BT", "LR" or "RL".
	// Empty means "TB".
	Rankdir string
}

var rankdirs = map[string]bool{"TB": true, "BT": true, "LR": true, "RL": true}

// ToDOT converts a graph to Graphviz DOT format. Nodes are identified by
// their payload, so two nodes with the same payload merge into one in the
// diagram. Node declarations follow arena slot order and edges follow
// insertion order, so the same graph always produces the same DOT text.
//
// A dangling edge (see [digraph.Digraph.RemoveNode]) is an error naming the
// source node.
//
// The resulting DOT string can be rendered with [RenderSVG] or saved and
// processed with external Graphviz tools.
func ToDOT(g *digraph.Digraph[string], opts Options) (string, error) {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "TB"
	}
	if !rankdirs[rankdir] {
		return "", fmt.Errorf("invalid rankdir %q", opts.Rankdir)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	for h := range g.Handles() {
		n, _ := g.Node(h)
		fmt.Fprintf(&buf, "  %q;\n", n.Data())
	}

	buf.WriteString("\n")
	for h := range g.Handles() {
		n, _ := g.Node(h)
		for _, succ := range n.Edges() {
			target, ok := g.Node(succ)
			if !ok {
				return "", fmt.Errorf("node %q: dangling edge cannot be rendered", n.Data())
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.Data(), target.Data())
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}
