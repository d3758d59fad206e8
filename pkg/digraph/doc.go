// Package digraph provides a directed graph with handle-based node identity
// and a deterministic topological sort.
//
// # Overview
//
// A [Digraph] stores its nodes in a generational arena (package arena), so
// nodes are addressed by [Handle] values rather than by name or pointer.
// Each node holds a payload and an ordered list of successor handles. Edges
// are weak: removing a node does not touch the edges that point at it, and
// a sort that later walks such a dangling edge fails with [ErrMissingNode]
// instead of silently skipping it.
//
// # Basic Usage
//
// Create a graph with [New], add nodes and edges, then sort:
//
//	g := digraph.New[string]()
//	app := g.AddNode("app")
//	lib := g.AddNode("lib")
//	g.AddEdge(app, lib) // app must come before lib
//
//	order, err := g.TopoSort()
//
// # Topological Sort
//
// [Digraph.TopoSort] runs a depth-first traversal with white/gray/black
// coloring, collects nodes in post-order, and reverses the result. For
// every edge u→v the output places u before v - the ordering convention of
// tsort(1). Encountering a gray node means the current DFS path loops back
// on itself and the sort fails with [ErrCycle]; no partial ordering is ever
// returned.
//
// The output is fully deterministic: top-level starts follow arena slot
// order and successor exploration follows edge insertion order.
//
// # Concurrency
//
// A graph has a single logical owner; no internal locking is performed.
package digraph
