package reach

import (
	"fmt"

	"github.com/matzehuels/synsetree/pkg/dag"
)

// Annotation maps every node of a graph to the size of its closed
// descendant set. It is immutable and safe for concurrent reads.
type Annotation struct {
	index map[string]int32
	sizes []int32
}

// Size returns the closed descendant count of id, which is at least 1.
// The boolean is false if id was not part of the annotated graph.
func (a *Annotation) Size(id string) (int, bool) {
	i, ok := a.index[id]
	if !ok {
		return 0, false
	}
	return int(a.sizes[i]), true
}

// Len returns the number of annotated nodes.
func (a *Annotation) Len() int { return len(a.sizes) }

// Sizes returns a copy of the annotation as a map.
func (a *Annotation) Sizes() map[string]int {
	out := make(map[string]int, len(a.index))
	for id, i := range a.index {
		out[id] = int(a.sizes[i])
	}
	return out
}

// Annotate computes the closed descendant set size of every node in g.
// The graph is only read. It returns a [*dag.CycleError] if g is cyclic.
func Annotate(g *dag.DAG) (*Annotation, error) {
	ids := g.IDs()
	n := len(ids)
	index := make(map[string]int32, n)
	for i, id := range ids {
		index[id] = int32(i)
	}

	children := make([][]int32, n)
	remaining := make([]int, n) // children not yet finished
	pending := make([]int, n)   // parents that still need this node's set
	var queue []int32
	for i, id := range ids {
		kids := g.Children(id)
		children[i] = make([]int32, len(kids))
		for j, c := range kids {
			children[i][j] = index[c]
		}
		remaining[i] = len(kids)
		pending[i] = g.InDegree(id)
		if remaining[i] == 0 {
			queue = append(queue, int32(i))
		}
	}

	sizes := make([]int32, n)
	sets := make([][]int32, n)
	mark := make([]uint32, n)
	var stamp uint32
	done := 0

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		done++

		stamp++
		set := []int32{v}
		mark[v] = stamp
		for _, c := range children[v] {
			for _, x := range sets[c] {
				if mark[x] != stamp {
					mark[x] = stamp
					set = append(set, x)
				}
			}
		}
		for _, c := range children[v] {
			pending[c]--
			if pending[c] == 0 {
				sets[c] = nil
			}
		}
		sizes[v] = int32(len(set))
		if pending[v] > 0 {
			sets[v] = set
		}

		for _, p := range g.Parents(ids[v]) {
			pi := index[p]
			remaining[pi]--
			if remaining[pi] == 0 {
				queue = append(queue, pi)
			}
		}
	}

	if done < n {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("annotate: %d of %d nodes have no topological order: %w", n-done, n, dag.ErrGraphHasCycle)
	}
	return &Annotation{index: index, sizes: sizes}, nil
}
