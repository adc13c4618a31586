package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrMalformedEdge is matched by [MalformedEdgeError]. It is returned by
	// [Build] when an edge has an empty endpoint.
	ErrMalformedEdge = errors.New("malformed edge")

	// ErrGraphHasCycle is matched by [CycleError]. It is returned by
	// [DAG.Validate] when a directed cycle is detected.
	ErrGraphHasCycle = errors.New("graph contains a cycle")

	// ErrFrozen is returned by every mutator once [DAG.Freeze] has been called.
	ErrFrozen = errors.New("graph is frozen")
)

// Node is a vertex of the hypernym graph: one lexical sense.
// Nodes are identified by their stable key and are immutable once added.
type Node struct {
	ID string // Stable sense key (e.g. "entity.n.01")
}

// Edge is a directed hypernym relation. From is the more general sense
// (hypernym), To the more specific one (hyponym).
type Edge struct {
	From string
	To   string
}

// DAG is a directed acyclic graph of senses with adjacency lists kept in
// insertion order, so traversals are deterministic for a fixed build order.
//
// The zero value is not usable - use [New] to create a valid DAG instance.
// A DAG is not safe for concurrent mutation. After [DAG.Freeze] it rejects
// all mutation and may be read from any number of goroutines.
type DAG struct {
	nodes    map[string]*Node
	order    []string            // node IDs in insertion order
	outgoing map[string][]string // nodeID -> children IDs
	incoming map[string][]string // nodeID -> parent IDs
	edges    map[Edge]struct{}
	frozen   bool
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		edges:    make(map[Edge]struct{}),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the node ID is empty, ErrDuplicateNodeID
// if a node with the same ID already exists, or ErrFrozen.
func (d *DAG) AddNode(n Node) error {
	if d.frozen {
		return ErrFrozen
	}
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	d.insert(n.ID)
	return nil
}

func (d *DAG) insert(id string) {
	d.nodes[id] = &Node{ID: id}
	d.order = append(d.order, id)
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode if the From node doesn't exist,
// ErrUnknownTargetNode if the To node doesn't exist, or ErrFrozen.
//
// Adding an edge that already exists is a no-op, so out-degrees always
// count distinct children.
func (d *DAG) AddEdge(e Edge) error {
	if d.frozen {
		return ErrFrozen
	}
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if _, dup := d.edges[e]; dup {
		return nil
	}
	d.edges[e] = struct{}{}
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// Freeze marks the graph read-only. It is idempotent.
func (d *DAG) Freeze() { d.frozen = true }

// Frozen reports whether [DAG.Freeze] has been called.
func (d *DAG) Frozen() bool { return d.frozen }

// Nodes returns all nodes in insertion order.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.order))
	for i, id := range d.order {
		nodes[i] = d.nodes[id]
	}
	return nodes
}

// IDs returns all node IDs in insertion order. The returned slice is a copy.
func (d *DAG) IDs() []string { return slices.Clone(d.order) }

// Edges returns all edges grouped by source node, sources in insertion order
// and children in stored out-edge order.
func (d *DAG) Edges() []Edge {
	out := make([]Edge, 0, len(d.edges))
	for _, from := range d.order {
		for _, to := range d.outgoing[from] {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of distinct edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the IDs of the node's hyponyms in stored out-edge order.
// Returns nil if the node has no children or doesn't exist. The returned
// slice must not be modified.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs of the node's hypernyms in insertion order.
// Returns nil if the node has no parents or doesn't exist. The returned
// slice must not be modified.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (d *DAG) OutDegree(id string) int { return len(d.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
// Returns 0 if the node doesn't exist.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// Node returns the node with the given ID and true, or nil and false if not found.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Has reports whether the graph contains a node with the given ID.
func (d *DAG) Has(id string) bool {
	_, ok := d.nodes[id]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (d *DAG) HasEdge(from, to string) bool {
	_, ok := d.edges[Edge{From: from, To: to}]
	return ok
}

// Sources returns nodes with no incoming edges (the most general senses),
// in insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges (senses with no hyponyms),
// in insertion order.
func (d *DAG) Sinks() []*Node {
	var sinks []*Node
	for _, id := range d.order {
		if len(d.outgoing[id]) == 0 {
			sinks = append(sinks, d.nodes[id])
		}
	}
	return sinks
}

// NodeIDs extracts the ID from each node in a slice.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
