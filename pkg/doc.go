// Package pkg holds the synsetree libraries.
//
// # Overview
//
// Synsetree loads the hypernym relation of a WordNet lexicon as a directed
// acyclic graph, counts the senses below every node once, and answers
// "show me the tree under this sense, at most N senses" on demand. The
// packages fall into three groups:
//
//  1. Engine: [dag], [reach], [classify], [snapshot], [extract], [tree]
//  2. Adapters: [lexicon] (memory, SQLite, OEWN import), [render] (DOT, SVG,
//     PNG, PDF), [server] (HTTP API and drill-down sessions)
//  3. Support: [pipeline], [config], [cache], [session], [errors],
//     [observability], [buildinfo]
//
// # Data flow
//
//	OEWN release (URL, file, directory)
//	         ↓
//	    [lexicon/oewn] parse, [cache] raw download
//	         ↓
//	    [lexicon/sqlite] synsets, lemmas, hypernyms
//	         ↓
//	    [dag].Build → [reach].Annotate → [snapshot].Snapshot
//	         ↓
//	    [extract].Extract (BFS up to limit) → [tree].Node
//	         ↓
//	    JSON, DOT, SVG/PNG/PDF, TUI, HTTP
//
// # Quick start
//
//	lex, _ := sqlite.Open("lexicon.db")
//	runner := pipeline.NewRunner(lex, lexicon.Noun, logger)
//	if _, err := runner.Build(ctx); err != nil {
//	    return err
//	}
//	view, err := runner.Explore(ctx, pipeline.Options{Root: "entity.n.01", Limit: 200})
//	if err != nil {
//	    return err
//	}
//	svg, err := runner.Render(ctx, view, pipeline.RenderOptions{Format: pipeline.FormatSVG})
//
// A built snapshot is immutable. Rebuilds publish a new one atomically, so
// any number of goroutines can call Explore while a rebuild runs.
package pkg
