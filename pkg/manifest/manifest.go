package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gotsort/pkg/digraph"
)

type manifestFile struct {
	Deps map[string][]string `toml:"deps"`
}

// Load reads the TOML manifest at path and builds its dependency graph.
func Load(path string) (*digraph.Digraph[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse builds a graph from TOML manifest data. Each key under [deps] becomes
// a node with an edge to every name in its list; names are deduplicated, so a
// name may appear as a key, in any number of lists, or both, and still maps
// to a single node. A key with an empty list is an isolated node.
//
// Nodes are created in document order (keys first, list entries as they are
// reached), which makes [digraph.Digraph.TopoSort] on the result
// deterministic for a fixed manifest.
//
// Keys outside [deps] are rejected.
func Parse(data []byte) (*digraph.Digraph[string], error) {
	var file manifestFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse manifest: unknown key %q", undecoded[0].String())
	}

	g := digraph.New[string]()
	seen := make(map[string]digraph.Handle, len(file.Deps))
	node := func(name string) digraph.Handle {
		if h, ok := seen[name]; ok {
			return h
		}
		h := g.AddNode(name)
		seen[name] = h
		return h
	}

	// toml.Unmarshal would leave map iteration order up to the runtime;
	// MetaData.Keys preserves the order keys appear in the document.
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "deps" {
			continue
		}
		from := node(key[1])
		for _, dep := range file.Deps[key[1]] {
			g.AddEdge(from, node(dep))
		}
	}

	return g, nil
}
