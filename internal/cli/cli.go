// Package cli implements the synsetree command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synsetree/pkg/cache"
	"github.com/matzehuels/synsetree/pkg/config"
	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/lexicon"
	"github.com/matzehuels/synsetree/pkg/lexicon/sqlite"
	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/session"
)

// appName is the application name used for directories and display.
const appName = "synsetree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// config loads the configuration once per process. The log level from the
// file applies unless --verbose was given.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if !c.verbose {
		if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
			c.SetLogLevel(level)
		}
	}
	c.cfg = cfg
	return cfg, nil
}

// =============================================================================
// Backends
// =============================================================================

// newCache opens the download cache selected in cfg.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}

// newSessionStore opens the drill-down session store selected in cfg.
func newSessionStore(ctx context.Context, cfg config.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "file":
		return session.NewFileStore(cfg.Dir)
	case "mongo":
		return session.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return session.NewMemoryStore(), nil
	}
}

// openLexicon opens the imported lexicon database.
func openLexicon(path string) (*sqlite.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeFileNotFound,
				"no lexicon at %s, run `%s import` first", path, appName)
		}
		return nil, err
	}
	return sqlite.Open(path)
}

// createLexicon opens the lexicon database, creating it and its directory
// when missing.
func createLexicon(path string) (*sqlite.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return sqlite.Open(path)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner opens the lexicon and builds the graph snapshot. The caller
// closes the runner.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	pos, err := lexicon.ParsePOS(cfg.Graph.POS)
	if err != nil {
		return nil, err
	}
	store, err := openLexicon(cfg.Lexicon.Path)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, pos, c.Logger)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Building hypernym graph...")
	spinner.Start()
	snap, err := runner.Build(ctx)
	spinner.Stop()
	if err != nil {
		runner.Close()
		return nil, err
	}
	st := snap.Stats()
	prog.done(fmt.Sprintf("Built graph with %d senses and %d edges", st.Nodes, st.Edges))
	return runner, nil
}

// elapsed formats a duration for status lines.
func elapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
