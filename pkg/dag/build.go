package dag

import (
	"fmt"
	"iter"
)

// MalformedEdgeError reports an input edge with an empty endpoint or an
// endpoint the resolver does not know. It matches [ErrMalformedEdge] under
// errors.Is.
type MalformedEdgeError struct {
	Index      int    // Zero-based position of the edge in the input sequence
	Edge       Edge   // The offending edge as received
	Unresolved string // Endpoint the resolver rejected; empty for an empty endpoint
}

func (e *MalformedEdgeError) Error() string {
	reason := "empty endpoint"
	if e.Unresolved != "" {
		reason = fmt.Sprintf("unresolvable node %q", e.Unresolved)
	}
	return fmt.Sprintf("edge %d (%q -> %q): %v: %s", e.Index, e.Edge.From, e.Edge.To, ErrMalformedEdge, reason)
}

func (e *MalformedEdgeError) Unwrap() error { return ErrMalformedEdge }

// Resolver reports whether a node ID names a known sense. A non-nil error
// aborts the build.
type Resolver func(id string) (bool, error)

// Build constructs a hypernym DAG from a sequence of (hypernym, hyponym)
// edges. Both endpoints are added on first mention; repeated edges are
// ignored. Node insertion order follows first mention, and each node's
// children keep the order their edges arrived in.
//
// Build fails with a [*MalformedEdgeError] if any edge has an empty
// endpoint. It does not check for cycles; call [DAG.Validate] for that.
func Build(edges iter.Seq[Edge]) (*DAG, error) {
	return BuildResolved(edges, nil)
}

// BuildResolved is [Build] with every endpoint checked against resolve on
// its first mention. An endpoint resolve rejects fails the build with a
// [*MalformedEdgeError]. A nil resolve accepts every non-empty ID.
func BuildResolved(edges iter.Seq[Edge], resolve Resolver) (*DAG, error) {
	g := New()
	i := 0
	for e := range edges {
		if e.From == "" || e.To == "" {
			return nil, &MalformedEdgeError{Index: i, Edge: e}
		}
		for _, id := range [2]string{e.From, e.To} {
			if g.Has(id) {
				continue
			}
			if resolve != nil {
				ok, err := resolve(id)
				if err != nil {
					return nil, fmt.Errorf("edge %d: resolve %q: %w", i, id, err)
				}
				if !ok {
					return nil, &MalformedEdgeError{Index: i, Edge: e, Unresolved: id}
				}
			}
			g.insert(id)
		}
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		i++
	}
	return g, nil
}
