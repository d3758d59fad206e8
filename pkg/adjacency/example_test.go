package adjacency_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gotsort/pkg/adjacency"
)

func ExampleParser_Parse() {
	g := adjacency.NewParser().Parse("app lib\nlib config\n")

	order, err := g.TopoSort()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, h := range order {
		n, _ := g.Node(h)
		fmt.Println(n.Data())
	}

	// Output:
	// app
	// lib
	// config
}

func ExampleParser_ParseReader() {
	input := strings.NewReader("core base\napp core\n")

	p := adjacency.NewParser()
	if err := p.ParseReader(input); err != nil {
		fmt.Println("error:", err)
		return
	}
	g := p.Finish()

	order, _ := g.TopoSort()
	names := make([]string, 0, len(order))
	for _, h := range order {
		n, _ := g.Node(h)
		names = append(names, n.Data())
	}
	fmt.Println(strings.Join(names, " "))

	// Output:
	// app core base
}
