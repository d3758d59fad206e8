package adjacency

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/gotsort/pkg/digraph"
)

// Parser accumulates adjacency-list text into a directed graph. Each input
// line names an edge source followed by its targets; node names are
// deduplicated across the whole parse, so a name always maps to the same
// graph node no matter how many lines mention it.
//
// The zero value is not usable - use [NewParser]. A parser is single-use:
// call [Parser.Finish] once to take the graph, then discard the parser.
type Parser struct {
	graph *digraph.Digraph[string]
	seen  map[string]digraph.Handle
	lines int
}

// NewParser creates a parser with an empty graph.
func NewParser() *Parser {
	return &Parser{
		graph: digraph.New[string](),
		seen:  make(map[string]digraph.Handle),
	}
}

// ParseLine consumes one line of input. Surrounding whitespace is trimmed
// and blank lines are ignored. Everything else is split on single spaces
// into node names: the first name is the edge source, and one edge is added
// from it to every following name, in order. A line with a single name
// declares an isolated node. Parsing never fails - empty and duplicate
// names are ordinary names, not errors.
func (p *Parser) ParseLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	p.lines++

	names := strings.Split(line, " ")
	source := p.node(names[0])
	for _, name := range names[1:] {
		p.graph.AddEdge(source, p.node(name))
	}
}

// Parse consumes a whole input text and returns the resulting graph. It
// splits text on newlines and feeds each line to [Parser.ParseLine], so
// whole-text and line-at-a-time parsing of the same input build identical
// graphs. Parse finishes the parser; do not reuse it afterwards.
func (p *Parser) Parse(text string) *digraph.Digraph[string] {
	for _, line := range strings.Split(text, "\n") {
		p.ParseLine(line)
	}
	return p.Finish()
}

// ParseReader streams lines from r into [Parser.ParseLine]. The only error
// source is the reader itself; input content never fails. The parser stays
// open so further lines can be added before [Parser.Finish].
func (p *Parser) ParseReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Generated inputs can carry far more targets per line than Scanner's
	// default 64KB token cap.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		p.ParseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Finish returns the accumulated graph. The parser must not be used after
// Finish - the graph's further life belongs to the caller.
func (p *Parser) Finish() *digraph.Digraph[string] {
	return p.graph
}

// Lines returns the number of non-blank lines consumed so far.
func (p *Parser) Lines() int {
	return p.lines
}

// node resolves name to its handle, allocating a new graph node the first
// time a name is seen.
func (p *Parser) node(name string) digraph.Handle {
	if h, ok := p.seen[name]; ok {
		return h
	}
	h := p.graph.AddNode(name)
	p.seen[name] = h
	return h
}
