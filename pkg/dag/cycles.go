package dag

import (
	"fmt"
	"strings"
)

// CycleError reports a directed cycle. Nodes lists the cycle in edge order,
// starting and ending with the same node. It matches [ErrGraphHasCycle]
// under errors.Is.
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrGraphHasCycle, strings.Join(e.Nodes, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrGraphHasCycle }

// Validate checks that the graph is acyclic. It returns a [*CycleError]
// naming the first cycle found, visiting roots in insertion order.
func (d *DAG) Validate() error {
	if cycle := d.findCycle(); cycle != nil {
		return &CycleError{Nodes: cycle}
	}
	return nil
}

// findCycle runs a white/gray/black depth-first search with an explicit
// stack. Hypernym chains are shallow but the lexicon is large, and a
// malformed import can produce arbitrarily long chains.
func (d *DAG) findCycle() []string {
	const (
		white = iota
		gray
		black
	)

	type frame struct {
		id   string
		next int
	}

	color := make(map[string]int, len(d.nodes))
	visit := func(start string) []string {
		stack := []frame{{id: start}}
		color[start] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := d.outgoing[top.id]
			if top.next == len(children) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := children[top.next]
			top.next++
			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			case gray:
				var cycle []string
				for i := len(stack) - 1; i >= 0; i-- {
					cycle = append(cycle, stack[i].id)
					if stack[i].id == child {
						break
					}
				}
				for l, r := 0, len(cycle)-1; l < r; l, r = l+1, r-1 {
					cycle[l], cycle[r] = cycle[r], cycle[l]
				}
				return append(cycle, child)
			}
		}
		return nil
	}

	for _, n := range d.Sources() {
		if cycle := visit(n.ID); cycle != nil {
			return cycle
		}
	}
	// Nodes only reachable through a cycle have no source above them.
	for _, id := range d.order {
		if color[id] == white {
			if cycle := visit(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
