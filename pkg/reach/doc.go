// Package reach annotates every node of a hypernym DAG with the size of its
// closed descendant set: the node itself plus every node reachable below it.
//
// In a tree this is the familiar subtree size, but hypernym graphs have
// nodes with several parents. Summing children's sizes would count a shared
// descendant once per path; [Annotate] instead unions the children's
// descendant sets, so every distinct node is counted once.
//
// # Algorithm
//
// Nodes are processed leaves first, in the reverse topological order given
// by Kahn's algorithm over out-degrees. Each node's set is the union of its
// children's sets plus itself, built into a fresh slice of dense node
// indices with stamp marking for membership. A child's set is released as
// soon as its last parent has consumed it, so only the frontier of
// unconsumed sets is live at any time.
//
// Time and transient memory are O(sum of |D(v)|) over all nodes v. The
// retained [Annotation] is O(V). For WordNet nouns (about 82k senses) the
// transient peak stays in the tens of megabytes.
//
// A graph with a cycle has no topological order; [Annotate] then returns
// the [*dag.CycleError] found by [dag.DAG.Validate].
package reach
