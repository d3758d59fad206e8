package digraph

import (
	"errors"
	"iter"
	"slices"

	"github.com/matzehuels/gotsort/pkg/arena"
)

var (
	// ErrCycle is returned by [Digraph.TopoSort] when a node is reachable
	// from itself via directed edges. Cycles are detected during the sort
	// itself using depth-first search with white/gray/black coloring, so no
	// separate validation pass is needed.
	ErrCycle = errors.New("graph contains a cycle")

	// ErrMissingNode is returned by [Digraph.TopoSort] when it traverses an
	// edge whose target handle does not resolve to a live node. Edges are
	// allowed to dangle (see [Digraph.RemoveNode]); the error surfaces only
	// when the dangling edge is actually walked.
	ErrMissingNode = errors.New("edge references a missing node")
)

// Handle identifies a node in a [Digraph]. It is an arena handle: stale
// handles (to removed nodes) are safe to hold and simply stop resolving.
type Handle = arena.Handle

// Node is a graph vertex: a payload plus an ordered list of successor
// handles. Edges are directed, unweighted, and not deduplicated - adding
// the same edge twice records it twice.
type Node[T any] struct {
	data  T
	edges []Handle
}

// Data returns the node's payload.
func (n *Node[T]) Data() T { return n.data }

// SetData replaces the node's payload.
func (n *Node[T]) SetData(data T) { n.data = data }

// Edges returns the node's successor handles in insertion order.
// The returned slice should not be modified - use it as a read-only view.
func (n *Node[T]) Edges() []Handle { return n.edges }

// Digraph is a directed graph whose nodes live in a generational arena.
// Node handles stay valid across unrelated mutations and become safe misses
// once their node is removed, which lets edges reference nodes weakly:
// removing a node never chases down the edges that point at it.
//
// The zero value is not usable - use [New]. Digraph is not safe for
// concurrent use without external synchronization.
type Digraph[T any] struct {
	nodes *arena.Arena[Node[T]]
}

// New creates an empty directed graph.
func New[T any]() *Digraph[T] {
	return &Digraph[T]{nodes: arena.New[Node[T]]()}
}

// AddNode adds a node holding data and returns its handle. O(1) amortized.
func (g *Digraph[T]) AddNode(data T) Handle {
	return g.nodes.Add(Node[T]{data: data})
}

// Node returns the node for h and true, or nil and false if h does not
// resolve (out of range, removed, or stale). The returned pointer refers to
// the node inside the graph, so payload modifications affect the graph.
func (g *Digraph[T]) Node(h Handle) (*Node[T], bool) {
	return g.nodes.Get(h)
}

// RemoveNode removes the node for h. Edges in other nodes that still point
// at h are left in place as dangling edges; [Digraph.TopoSort] reports them
// as [ErrMissingNode] when traversed. Removing an unresolvable handle is a
// no-op.
func (g *Digraph[T]) RemoveNode(h Handle) {
	g.nodes.Remove(h)
}

// AddEdge appends a directed edge from one node to another. The target is
// not validated here - it may dangle until sort time. If the source does
// not resolve, the edge is silently dropped.
func (g *Digraph[T]) AddEdge(from, to Handle) {
	n, ok := g.nodes.Get(from)
	if !ok {
		return
	}
	n.edges = append(n.edges, to)
}

// Len returns the number of live nodes. O(1).
func (g *Digraph[T]) Len() int {
	return g.nodes.Len()
}

// EdgeCount returns the total number of edges, dangling ones included.
func (g *Digraph[T]) EdgeCount() int {
	total := 0
	for h := range g.Handles() {
		n, _ := g.nodes.Get(h)
		total += len(n.edges)
	}
	return total
}

// Handles returns an iterator over the handles of all live nodes in arena
// slot order. This is the tie-break order [Digraph.TopoSort] uses for its
// top-level starts.
func (g *Digraph[T]) Handles() iter.Seq[Handle] {
	return g.nodes.Handles()
}

// TopoSort returns the graph's nodes in topological order: for every edge
// u→v, u appears before v. The sort is a reversed post-order depth-first
// traversal with three-state coloring for cycle detection.
//
// The output is deterministic for a fixed sequence of AddNode/AddEdge calls:
// roots are taken in arena slot order and successors in edge insertion
// order.
//
// On success the result has length [Digraph.Len]. On failure the first
// error encountered is returned - [ErrCycle] for a node reachable from
// itself, [ErrMissingNode] for a dangling edge - and no partial ordering
// is produced.
func (g *Digraph[T]) TopoSort() ([]Handle, error) {
	const (
		white = iota // untouched
		gray         // on the current DFS path
		black        // fully explored and emitted
	)

	color := make(map[Handle]int, g.Len())
	order := make([]Handle, 0, g.Len())

	var visit func(h Handle) error
	visit = func(h Handle) error {
		node, ok := g.nodes.Get(h)
		if !ok {
			return ErrMissingNode
		}
		switch color[h] {
		case gray:
			return ErrCycle
		case black:
			return nil
		}
		color[h] = gray
		for _, succ := range node.edges {
			if err := visit(succ); err != nil {
				return err
			}
		}
		order = append(order, h)
		color[h] = black
		return nil
	}

	for h := range g.Handles() {
		if color[h] == white {
			if err := visit(h); err != nil {
				return nil, err
			}
		}
	}

	slices.Reverse(order)
	return order, nil
}
