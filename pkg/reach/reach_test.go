package reach

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/synsetree/pkg/dag"
)

func build(t *testing.T, edges ...dag.Edge) *dag.DAG {
	t.Helper()
	g, err := dag.Build(slices.Values(edges))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name  string
		edges []dag.Edge
		want  map[string]int
	}{
		{
			name:  "single edge",
			edges: []dag.Edge{{From: "a", To: "b"}},
			want:  map[string]int{"a": 2, "b": 1},
		},
		{
			name:  "chain",
			edges: []dag.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
			want:  map[string]int{"a": 3, "b": 2, "c": 1},
		},
		{
			name: "diamond",
			edges: []dag.Edge{
				{From: "A", To: "B"}, {From: "A", To: "C"},
				{From: "B", To: "D"}, {From: "C", To: "D"},
			},
			want: map[string]int{"A": 4, "B": 2, "C": 2, "D": 1},
		},
		{
			name: "two roots share a subtree",
			edges: []dag.Edge{
				{From: "r1", To: "x"}, {From: "r2", To: "x"},
				{From: "x", To: "y"}, {From: "x", To: "z"},
			},
			want: map[string]int{"r1": 4, "r2": 4, "x": 3, "y": 1, "z": 1},
		},
		{
			name: "stacked diamonds",
			edges: []dag.Edge{
				{From: "a", To: "b"}, {From: "a", To: "c"},
				{From: "b", To: "d"}, {From: "c", To: "d"},
				{From: "d", To: "e"}, {From: "d", To: "f"},
				{From: "e", To: "g"}, {From: "f", To: "g"},
				{From: "a", To: "g"},
			},
			want: map[string]int{"a": 7, "b": 5, "c": 5, "d": 4, "e": 2, "f": 2, "g": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Annotate(build(t, tt.edges...))
			if err != nil {
				t.Fatalf("Annotate() error = %v", err)
			}
			if got := a.Sizes(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sizes() = %v, want %v", got, tt.want)
			}
			if a.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", a.Len(), len(tt.want))
			}
		})
	}
}

func TestAnnotate_EmptyGraph(t *testing.T) {
	a, err := Annotate(dag.New())
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestAnnotation_SizeUnknown(t *testing.T) {
	a, _ := Annotate(build(t, dag.Edge{From: "a", To: "b"}))
	if size, ok := a.Size("zzz"); ok || size != 0 {
		t.Errorf("Size(zzz) = %d, %v, want 0, false", size, ok)
	}
}

func TestAnnotate_Cycle(t *testing.T) {
	g := build(t,
		dag.Edge{From: "root", To: "a"},
		dag.Edge{From: "a", To: "b"},
		dag.Edge{From: "b", To: "a"},
		dag.Edge{From: "root", To: "leaf"},
	)
	a, err := Annotate(g)
	if a != nil {
		t.Errorf("Annotate() = %v, want nil", a)
	}
	if !errors.Is(err, dag.ErrGraphHasCycle) {
		t.Fatalf("Annotate() error = %v, want ErrGraphHasCycle", err)
	}
	var ce *dag.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("Annotate() error type = %T, want *dag.CycleError", err)
	}
	if want := []string{"a", "b", "a"}; !reflect.DeepEqual(ce.Nodes, want) {
		t.Errorf("CycleError.Nodes = %v, want %v", ce.Nodes, want)
	}
}

func TestAnnotate_Idempotent(t *testing.T) {
	g := randomDAG(rand.New(rand.NewSource(7)), 300, 900)
	first, err := Annotate(g)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	second, err := Annotate(g)
	if err != nil {
		t.Fatalf("Annotate() second error = %v", err)
	}
	if !reflect.DeepEqual(first.Sizes(), second.Sizes()) {
		t.Error("Annotate() is not idempotent")
	}
}

// TestAnnotate_MatchesBruteForce checks every size against a plain
// traversal, along with the size >= 1 and terminal-iff-1 properties.
func TestAnnotate_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		g := randomDAG(rng, 50+rng.Intn(150), 100+rng.Intn(400))
		a, err := Annotate(g)
		if err != nil {
			t.Fatalf("round %d: Annotate() error = %v", round, err)
		}
		for _, id := range g.IDs() {
			got, ok := a.Size(id)
			if !ok {
				t.Fatalf("round %d: Size(%s) missing", round, id)
			}
			if want := reachable(g, id); got != want {
				t.Errorf("round %d: Size(%s) = %d, want %d", round, id, got, want)
			}
			if got < 1 {
				t.Errorf("round %d: Size(%s) = %d, want >= 1", round, id, got)
			}
			if (got == 1) != (g.OutDegree(id) == 0) {
				t.Errorf("round %d: Size(%s) = %d with out-degree %d", round, id, got, g.OutDegree(id))
			}
		}
	}
}

func reachable(g *dag.DAG, id string) int {
	seen := map[string]bool{id: true}
	stack := []string{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.Children(n) {
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	return len(seen)
}

// randomDAG builds an acyclic graph by only allowing edges from lower to
// higher node numbers.
func randomDAG(rng *rand.Rand, nodes, edges int) *dag.DAG {
	var es []dag.Edge
	for i := 1; i < nodes; i++ {
		es = append(es, dag.Edge{From: fmt.Sprint("n", rng.Intn(i)), To: fmt.Sprint("n", i)})
	}
	for len(es) < edges {
		a, b := rng.Intn(nodes), rng.Intn(nodes)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		es = append(es, dag.Edge{From: fmt.Sprint("n", a), To: fmt.Sprint("n", b)})
	}
	g, err := dag.Build(slices.Values(es))
	if err != nil {
		panic(err)
	}
	return g
}

func BenchmarkAnnotate(b *testing.B) {
	g := randomDAG(rand.New(rand.NewSource(1)), 20000, 30000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Annotate(g); err != nil {
			b.Fatal(err)
		}
	}
}
