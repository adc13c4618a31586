package config

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synsetree/pkg/lexicon"
)

// Validate checks business rules on a loaded configuration. Load calls it.
func (c *Config) Validate() error {
	if c.Graph.NodeLimit < MinNodeLimit {
		return fmt.Errorf("graph.graph_node_limit must be >= %d (got %d)", MinNodeLimit, c.Graph.NodeLimit)
	}
	if c.Server.MaxLimit < c.Graph.NodeLimit {
		return fmt.Errorf("server.max_limit must be >= graph.graph_node_limit (got %d < %d)", c.Server.MaxLimit, c.Graph.NodeLimit)
	}
	if c.Graph.Language == "" {
		return fmt.Errorf("graph.language must not be empty")
	}
	if c.Graph.POS != "" {
		if _, err := lexicon.ParsePOS(c.Graph.POS); err != nil {
			return fmt.Errorf("graph.pos: %w", err)
		}
	}
	if !slices.Contains([]string{"file", "redis", "none"}, c.Cache.Backend) {
		return fmt.Errorf("cache.backend must be file, redis or none (got %q)", c.Cache.Backend)
	}
	if !slices.Contains([]string{"memory", "file", "mongo"}, c.Session.Backend) {
		return fmt.Errorf("session.backend must be memory, file or mongo (got %q)", c.Session.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %v)", c.Session.TTL)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
