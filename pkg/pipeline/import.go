package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synsetree/pkg/lexicon/oewn"
	"github.com/matzehuels/synsetree/pkg/lexicon/sqlite"
)

// ImportResult reports a completed lexicon import.
type ImportResult struct {
	Source   string
	Parsed   oewn.Stats
	Written  sqlite.ImportStats
	Duration time.Duration
}

// Import loads an Open English WordNet release from src (URL, GWN-LMF
// file or OEWN directory) and replaces the contents of store with it.
// URL downloads go through f, which retries and caches them.
func Import(ctx context.Context, store *sqlite.Store, src string, f *oewn.Fetcher, refresh bool, logger *log.Logger) (*ImportResult, error) {
	start := time.Now()
	synsets, parsed, err := oewn.Load(ctx, src, f, refresh)
	if err != nil {
		return nil, stageErr("load "+src, err)
	}
	if logger != nil {
		logger.Info("parsed release",
			"synsets", parsed.Synsets,
			"lemmas", parsed.Lemmas,
			"hypernyms", parsed.Hypernyms,
			"skipped", parsed.Skipped)
	}

	written, err := store.Import(ctx, synsets, src)
	if err != nil {
		return nil, stageErr("store", err)
	}
	return &ImportResult{
		Source:   src,
		Parsed:   parsed,
		Written:  written,
		Duration: time.Since(start),
	}, nil
}
