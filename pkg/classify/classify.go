// Package classify labels hypernym graph nodes as internal or terminal.
//
// A node is [Internal] when it has at least one hyponym in the full graph,
// regardless of whether any of them made it into an extracted subtree, and
// [Terminal] otherwise. The labels match the ELEMENT and ITEM markers shown
// next to each sense in the interactive views.
package classify

import (
	"fmt"

	"github.com/matzehuels/synsetree/pkg/dag"
)

// Kind is the classification of a single node.
type Kind int

const (
	Terminal Kind = iota // no outgoing edges
	Internal             // at least one outgoing edge
)

// String returns "internal" or "terminal".
func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Label returns the display marker: "ELEMENT" for internal nodes and
// "ITEM" for terminal ones.
func (k Kind) Label() string {
	if k == Internal {
		return "ELEMENT"
	}
	return "ITEM"
}

// MarshalText encodes the kind as its lowercase name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses "internal" or "terminal".
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "internal":
		*k = Internal
	case "terminal":
		*k = Terminal
	default:
		return fmt.Errorf("unknown kind %q", text)
	}
	return nil
}

// Of classifies id against the full graph. Unknown IDs are terminal.
func Of(g *dag.DAG, id string) Kind {
	if g.OutDegree(id) > 0 {
		return Internal
	}
	return Terminal
}

// Counts tallies a set of nodes by kind.
type Counts struct {
	Internal int `json:"internal"`
	Terminal int `json:"terminal"`
}

// Total returns Internal + Terminal.
func (c Counts) Total() int { return c.Internal + c.Terminal }

// Count classifies each distinct ID in ids. Repeated IDs are counted once.
func Count(g *dag.DAG, ids []string) Counts {
	var c Counts
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if Of(g, id) == Internal {
			c.Internal++
		} else {
			c.Terminal++
		}
	}
	return c
}
