package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gotsort/pkg/digraph"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	Name string `json:"name"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes a graph as JSON and writes it to w. Nodes are emitted
// in arena iteration order and edges in per-node insertion order, so output
// is deterministic and a round trip through [ReadJSON] reproduces the same
// topological order.
//
// The format is name-keyed, which imposes two conditions the in-memory
// graph does not: every node name must be unique, and every edge target
// must resolve. WriteJSON returns an error naming the offending node if
// either is violated.
func WriteJSON(g *digraph.Digraph[string], w io.Writer) error {
	out := graph{
		Nodes: make([]node, 0, g.Len()),
		Edges: []edge{},
	}

	seen := make(map[string]bool, g.Len())
	for h := range g.Handles() {
		n, _ := g.Node(h)
		name := n.Data()
		if seen[name] {
			return fmt.Errorf("node %q: duplicate name, graph cannot round-trip", name)
		}
		seen[name] = true
		out.Nodes = append(out.Nodes, node{Name: name})
	}

	for h := range g.Handles() {
		n, _ := g.Node(h)
		for _, succ := range n.Edges() {
			target, ok := g.Node(succ)
			if !ok {
				return fmt.Errorf("node %q: dangling edge cannot be exported", n.Data())
			}
			out.Edges = append(out.Edges, edge{From: n.Data(), To: target.Data()})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *digraph.Digraph[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
