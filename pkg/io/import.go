package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gotsort/pkg/digraph"
)

// ReadJSON decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"name": "a"}, {"name": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Nodes are created in array order, which fixes the arena order and with it
// the topological tie-break. A duplicate node name collapses onto the
// already-created node, matching the adjacency parser's deduplication rule.
// An edge endpoint that names an unknown node is an error - the name-keyed
// format has no way to express a dangling edge.
//
// The returned graph is independent of r and can be modified freely.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*digraph.Digraph[string], error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := digraph.New[string]()
	byName := make(map[string]digraph.Handle, len(data.Nodes))
	for _, n := range data.Nodes {
		if _, ok := byName[n.Name]; ok {
			continue
		}
		byName[n.Name] = g.AddNode(n.Name)
	}

	for _, e := range data.Edges {
		from, ok := byName[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: unknown node %q", e.From, e.To, e.From)
		}
		to, ok := byName[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: unknown node %q", e.From, e.To, e.To)
		}
		g.AddEdge(from, to)
	}

	return g, nil
}

// ImportJSON reads the JSON file at path and returns the decoded graph.
// The error wraps the underlying cause with the file path for context;
// decoding and validation errors are the same as [ReadJSON].
func ImportJSON(path string) (*digraph.Digraph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
