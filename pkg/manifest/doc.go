// Package manifest parses TOML dependency manifests into directed graphs.
//
// # Format
//
// A manifest is a single [deps] table mapping each name to the names it
// depends on:
//
//	[deps]
//	app = ["lib", "config"]
//	lib = ["config"]
//
// Every edge runs from the key to a list entry, so a topological sort of
// the resulting graph lists dependents before their dependencies. Names
// that only ever appear inside lists (like "config" above) get nodes too.
//
// # Determinism
//
// Nodes are created in document order and edges in list order, so the same
// manifest always produces the same [digraph.Digraph.TopoSort] result.
// Reordering keys or list entries may reorder independent nodes in the
// sort; the dependency relation itself is unaffected.
//
// [digraph.Digraph.TopoSort]: github.com/matzehuels/gotsort/pkg/digraph.Digraph.TopoSort
package manifest
