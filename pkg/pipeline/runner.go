package pipeline

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synsetree/pkg/dag"
	"github.com/matzehuels/synsetree/pkg/extract"
	"github.com/matzehuels/synsetree/pkg/lexicon"
	"github.com/matzehuels/synsetree/pkg/observability"
	"github.com/matzehuels/synsetree/pkg/snapshot"
)

// Runner executes pipeline stages against one lexicon.
//
// The Runner holds the current snapshot and publishes rebuilt ones
// atomically. Explore and Render never block on a rebuild; they use
// whichever snapshot was current when they started. Multiple goroutines
// can safely use the same Runner.
type Runner struct {
	Lexicon lexicon.Lexicon
	POS     lexicon.POS
	Logger  *log.Logger

	snaps   snapshot.Holder
	buildMu sync.Mutex
}

// NewRunner creates a runner over lex restricted to senses of pos.
// An empty pos builds the graph over all parts of speech.
func NewRunner(lex lexicon.Lexicon, pos lexicon.POS, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Lexicon: lex, POS: pos, Logger: logger}
}

// Build reads all hypernym edges, builds and annotates the graph, and
// publishes the result as the current snapshot. Concurrent calls are
// serialized. On error the previous snapshot stays current.
func (r *Runner) Build(ctx context.Context) (*snapshot.Snapshot, error) {
	r.buildMu.Lock()
	defer r.buildMu.Unlock()

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, string(r.POS))
	start := time.Now()

	snap, err := r.build(ctx)

	var nodes, edges int
	if snap != nil {
		nodes, edges = snap.Graph().NodeCount(), snap.Graph().EdgeCount()
	}
	hooks.OnBuildComplete(ctx, string(r.POS), nodes, edges, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.snaps.Store(snap)
	r.Logger.Info("built graph",
		"nodes", nodes,
		"edges", edges,
		"duration", time.Since(start))
	return snap, nil
}

func (r *Runner) build(ctx context.Context) (*snapshot.Snapshot, error) {
	edges, err := r.Lexicon.AllEdges(ctx, r.POS)
	if err != nil {
		return nil, stageErr("read edges", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, stageErr("build", err)
	}
	r.Logger.Debug("read edges", "count", len(edges))

	g, err := dag.BuildResolved(slices.Values(edges), r.resolver(ctx))
	if err != nil {
		return nil, stageErr("build graph", err)
	}
	snap, err := snapshot.New(g)
	if err != nil {
		return nil, stageErr("annotate", err)
	}
	return snap, nil
}

// resolver accepts the edge endpoints the lexicon can look up.
func (r *Runner) resolver(ctx context.Context) dag.Resolver {
	return func(key string) (bool, error) {
		_, err := r.Lexicon.Lookup(ctx, key)
		if errors.Is(err, lexicon.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	}
}

// Snapshot returns the current snapshot, or a NOT_READY error before the
// first successful [Runner.Build].
func (r *Runner) Snapshot() (*snapshot.Snapshot, error) {
	snap := r.snaps.Load()
	if snap == nil {
		return nil, Classify(ErrNotReady)
	}
	return snap, nil
}

// Ready reports whether a snapshot has been published.
func (r *Runner) Ready() bool { return r.snaps.Load() != nil }

// Explore extracts the bounded subtree below opts.Root from the current
// snapshot. Display names are resolved in opts.Language while the tree is
// projected.
func (r *Runner) Explore(ctx context.Context, opts Options) (*View, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	snap, err := r.Snapshot()
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnExtractStart(ctx, opts.Root, opts.Limit)
	start := time.Now()

	res, err := extract.Extract(snap, opts.Root, opts.Limit, extract.Options{
		Name:     r.namer(ctx, opts.Language),
		Progress: opts.Progress,
	})

	selected := 0
	if res != nil {
		selected = len(res.Selected)
	}
	hooks.OnExtractComplete(ctx, opts.Root, selected, time.Since(start), err)
	if err != nil {
		return nil, Classify(err)
	}

	def, err := r.Lexicon.Definition(ctx, opts.Root)
	if err != nil {
		r.Logger.Debug("definition unavailable", "key", opts.Root, "error", err)
	}
	r.Logger.Debug("extracted subtree",
		"root", opts.Root,
		"size", res.Size,
		"selected", selected,
		"trimmed", res.Trimmed,
		"duration", time.Since(start))

	return &View{
		Result:     res,
		Name:       res.Tree.Name,
		Definition: def,
		Kind:       snap.Kind(opts.Root),
		Language:   opts.Language,
		snap:       snap,
	}, nil
}

// namer resolves display names, falling back to the bare key.
func (r *Runner) namer(ctx context.Context, lang string) func(string) string {
	return func(key string) string {
		name, err := r.Lexicon.DisplayName(ctx, key, lang)
		if err != nil {
			r.Logger.Debug("display name unavailable", "key", key, "error", err)
			return key
		}
		return name
	}
}

// Close releases the lexicon.
func (r *Runner) Close() error {
	if r.Lexicon != nil {
		return r.Lexicon.Close()
	}
	return nil
}
