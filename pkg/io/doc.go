// Package io provides JSON import and export for directed graphs.
//
// # Overview
//
// The JSON format is the interchange surface between gotsort runs and
// external tools: parse an adjacency list once, export the graph, and any
// later invocation (or any other program) can re-import it without
// re-parsing the original text.
//
// # JSON Format
//
// Two required top-level arrays:
//
//	{
//	  "nodes": [
//	    {"name": "app"},
//	    {"name": "lib"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib"}
//	  ]
//	}
//
// Node order matters: nodes are re-created in array order on import, which
// preserves the deterministic tie-break of the topological sort. Edges are
// name-keyed, so the format cannot express dangling edges - exporting a
// graph with a dangling edge is an error, and importing an edge with an
// unknown endpoint is too.
//
// # Usage
//
// [WriteJSON] and [ReadJSON] work with io.Writer/io.Reader; [ExportJSON]
// and [ImportJSON] are the file-path conveniences:
//
//	g, err := io.ImportJSON("deps.json")
//	if err != nil {
//	    return err
//	}
//	order, err := g.TopoSort()
//
// # Round Trip
//
// Export followed by import reproduces a graph with identical node order,
// edge order, and therefore an identical topological sort.
package io
