// Package snapshot pairs a frozen hypernym DAG with its reachability
// annotation so both can be shared by concurrent readers.
//
// A [Snapshot] is built once per process (or per rebuild) and never
// modified. Servers hold the current one in a [Holder] and publish a
// rebuilt snapshot with a single atomic store; requests already running
// keep the snapshot they loaded.
package snapshot

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/matzehuels/synsetree/pkg/classify"
	"github.com/matzehuels/synsetree/pkg/dag"
	"github.com/matzehuels/synsetree/pkg/reach"
)

// Snapshot is an immutable view of one annotated graph.
type Snapshot struct {
	graph   *dag.DAG
	sizes   *reach.Annotation
	builtAt time.Time
}

// New annotates g, freezes it and returns the snapshot. It fails with a
// [*dag.CycleError] if g is cyclic. g must not be modified by the caller
// afterwards.
func New(g *dag.DAG) (*Snapshot, error) {
	ann, err := reach.Annotate(g)
	if err != nil {
		return nil, err
	}
	return FromAnnotation(g, ann)
}

// FromAnnotation wraps an already computed annotation. It fails if the
// annotation does not cover every node of g.
func FromAnnotation(g *dag.DAG, ann *reach.Annotation) (*Snapshot, error) {
	if ann.Len() != g.NodeCount() {
		return nil, fmt.Errorf("annotation covers %d nodes, graph has %d", ann.Len(), g.NodeCount())
	}
	g.Freeze()
	return &Snapshot{graph: g, sizes: ann, builtAt: time.Now()}, nil
}

// Graph returns the frozen graph.
func (s *Snapshot) Graph() *dag.DAG { return s.graph }

// Annotation returns the reachability annotation.
func (s *Snapshot) Annotation() *reach.Annotation { return s.sizes }

// BuiltAt returns when the snapshot was created.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Has reports whether key is a node of the snapshot.
func (s *Snapshot) Has(key string) bool { return s.graph.Has(key) }

// Size returns the closed descendant count of key.
func (s *Snapshot) Size(key string) (int, bool) { return s.sizes.Size(key) }

// Kind classifies key against the full graph.
func (s *Snapshot) Kind(key string) classify.Kind { return classify.Of(s.graph, key) }

// Stats summarizes a snapshot.
type Stats struct {
	Nodes     int `json:"nodes"`
	Edges     int `json:"edges"`
	Roots     int `json:"roots"`
	Terminals int `json:"terminals"`
	MaxSize   int `json:"max_size"`
}

// Stats computes summary counts over the whole graph.
func (s *Snapshot) Stats() Stats {
	st := Stats{
		Nodes: s.graph.NodeCount(),
		Edges: s.graph.EdgeCount(),
		Roots: len(s.graph.Sources()),
	}
	st.Terminals = len(s.graph.Sinks())
	for _, n := range s.graph.Sources() {
		if size, _ := s.sizes.Size(n.ID); size > st.MaxSize {
			st.MaxSize = size
		}
	}
	return st
}

// Holder publishes the current snapshot to concurrent readers.
// The zero value holds no snapshot.
type Holder struct {
	p atomic.Pointer[Snapshot]
}

// Load returns the current snapshot, or nil if none has been stored.
func (h *Holder) Load() *Snapshot { return h.p.Load() }

// Store publishes s and returns the snapshot it replaced.
func (h *Holder) Store(s *Snapshot) *Snapshot { return h.p.Swap(s) }
