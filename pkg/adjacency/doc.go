// Package adjacency parses line-oriented adjacency lists into directed
// graphs.
//
// # Input Format
//
// Each line is a source name followed by zero or more target names,
// separated by single ASCII spaces:
//
//	app lib config
//	lib config
//	standalone
//
// The first line adds edges app→lib and app→config, the second lib→config,
// and the third declares an isolated node. Surrounding whitespace is
// trimmed and blank lines are skipped. Names are opaque strings with no
// escaping - a name cannot contain a space.
//
// # Deduplication
//
// A [Parser] keeps a name→handle map for its whole lifetime: the first
// occurrence of a name allocates a graph node, every later occurrence
// resolves to the same node. Parsing "a b" followed by "a c" therefore
// yields one node a with two outgoing edges, in that order.
//
// # Streaming
//
// [Parser.ParseLine] is the primitive; [Parser.Parse] and
// [Parser.ParseReader] are conveniences built on it. Feeding the same input
// line by line, as one text, or through a reader produces identical graphs.
//
//	p := adjacency.NewParser()
//	if err := p.ParseReader(os.Stdin); err != nil {
//	    return err
//	}
//	g := p.Finish()
//	order, err := g.TopoSort()
//
// Parsing itself never fails; only [Parser.ParseReader] can return an
// error, and only when the underlying reader does.
package adjacency
