// Package pkg provides the core libraries for gotsort dependency ordering.
//
// # Overview
//
// Gotsort turns dependency descriptions into topological orderings and
// diagrams. The pkg directory is organized into four main areas:
//
//  1. Graph core ([arena], [digraph]) - generational storage and the graph
//  2. Input formats ([adjacency], [manifest], [io]) - text, TOML, and JSON
//  3. Output formats ([render], [io]) - DOT, SVG, and JSON
//  4. Orchestration ([pipeline], [cache], [observability]) - the parse →
//     sort → render flow shared by all entry points
//
// # Architecture
//
// The typical data flow through gotsort:
//
//	adjacency text / TOML manifest / graph.json
//	         ↓
//	    [adjacency] / [manifest] / [io] (build the graph)
//	         ↓
//	    [digraph] package (arena-backed graph + topological sort)
//	         ↓
//	    [render] / [io] (DOT, SVG, JSON output)
//
// # Quick Start
//
// Parse an adjacency list and print a topological ordering:
//
//	import (
//	    "fmt"
//	    "strings"
//
//	    "github.com/matzehuels/gotsort/pkg/adjacency"
//	)
//
//	p := adjacency.NewParser()
//	_ = p.ParseReader(strings.NewReader("a b\nb c\n"))
//	g := p.Finish()
//
//	order, _ := g.TopoSort()
//	for _, h := range order {
//	    n, _ := g.Node(h)
//	    fmt.Println(n.Data())
//	}
//
// # Main Packages
//
// [arena] - Generational slot arena. Handles stay cheap to copy and
// invalidate on removal, so stale references are detected instead of
// silently reading reused slots.
//
// [digraph] - Directed graph on top of the arena with depth-first
// topological sort and cycle detection. Parallel edges are kept, edges to
// removed nodes are reported as [digraph.ErrMissingNode].
//
// [adjacency] - Line-oriented parser for the classic "node successor..."
// input format.
//
// [manifest] - TOML manifest input ([deps] tables) for dependency lists
// that live in configuration files.
//
// [io] - Canonical JSON graph serialization, the interchange format
// between the parse and render commands.
//
// [render] - DOT generation and SVG rendering via embedded Graphviz.
//
// [pipeline] - The parse → sort → render orchestration used by the CLI.
// Centralizes option validation, coded errors, and artifact caching.
//
// [cache] - File-backed artifact cache with TTL expiry, used to avoid
// re-rendering SVGs for unchanged graphs.
//
// [observability] - Optional pipeline hooks for embedding gotsort in
// larger systems.
//
// [errors] - Structured errors with machine-readable codes shared across
// the pipeline and CLI.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/digraph/...  # Specific package
//	go test -run Example       # Examples only
//
// [arena]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/arena
// [digraph]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/digraph
// [adjacency]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/adjacency
// [manifest]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/manifest
// [io]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/errors
// [digraph.ErrMissingNode]: https://pkg.go.dev/github.com/matzehuels/gotsort/pkg/digraph#ErrMissingNode
package pkg
