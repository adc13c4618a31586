// Package dag provides the hypernym graph at the center of synsetree: a
// directed acyclic graph whose nodes are lexical senses and whose edges run
// from a more general sense (hypernym) to a more specific one (hyponym).
//
// # Overview
//
// A lexicon such as WordNet organizes nouns into a hierarchy that is almost,
// but not quite, a tree: some senses have more than one hypernym. This
// package stores that structure with adjacency lists kept in insertion
// order, so every traversal over a graph built from the same edge sequence
// visits nodes in the same order.
//
// # Building
//
// [Build] consumes an edge sequence, adds each endpoint on first mention and
// ignores duplicate edges:
//
//	g, err := dag.Build(slices.Values([]dag.Edge{
//		{From: "entity", To: "object"},
//		{From: "object", To: "artifact"},
//	}))
//
// An edge with an empty endpoint fails the build with a
// [*MalformedEdgeError]. Acyclicity is checked separately by
// [DAG.Validate], which reports a [*CycleError].
//
// Graphs can also be assembled by hand with [New], [DAG.AddNode] and
// [DAG.AddEdge].
//
// # Queries
//
// [DAG.Children], [DAG.Parents], [DAG.OutDegree], [DAG.Sources] and
// [DAG.Sinks] answer structural questions. [DAG.PathsToSource] lists every
// hypernym path from a root sense down to a node.
//
// # Concurrency
//
// A DAG is not safe for concurrent mutation. Once [DAG.Freeze] has been
// called every mutator returns [ErrFrozen] and the graph may be shared
// freely between goroutines.
package dag
