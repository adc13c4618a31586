package dag_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/synsetree/pkg/dag"
)

func ExampleBuild() {
	g, err := dag.Build(slices.Values([]dag.Edge{
		{From: "entity", To: "object"},
		{From: "object", To: "artifact"},
		{From: "object", To: "whole"},
		{From: "whole", To: "artifact"},
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Children of object:", g.Children("object"))
	fmt.Println("Parents of artifact:", g.Parents("artifact"))
	// Output:
	// Nodes: 4
	// Edges: 4
	// Children of object: [artifact whole]
	// Parents of artifact: [object whole]
}

func ExampleDAG_PathsToSource() {
	g, _ := dag.Build(slices.Values([]dag.Edge{
		{From: "entity", To: "object"},
		{From: "object", To: "artifact"},
		{From: "object", To: "whole"},
		{From: "whole", To: "artifact"},
	}))

	for _, p := range g.PathsToSource("artifact") {
		fmt.Println(p)
	}
	// Output:
	// [entity object artifact]
	// [entity object whole artifact]
}

func ExampleDAG_Validate() {
	g, _ := dag.Build(slices.Values([]dag.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "a"},
	}))

	err := g.Validate()
	fmt.Println(errors.Is(err, dag.ErrGraphHasCycle))
	fmt.Println(err)
	// Output:
	// true
	// graph contains a cycle: a -> b -> c -> a
}
