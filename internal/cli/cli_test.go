package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/synsetree/pkg/config"
	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/lexicon"
	"github.com/matzehuels/synsetree/pkg/lexicon/sqlite"
	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/session"
)

func fixtureSynsets() []lexicon.Synset {
	eng := func(l ...string) map[string][]string { return map[string][]string{"eng": l} }
	return []lexicon.Synset{
		{Key: "entity.n.01", POS: lexicon.Noun, Definition: "that which is perceived to exist", Lemmas: eng("entity")},
		{Key: "animal.n.01", POS: lexicon.Noun, Lemmas: eng("animal"), Hypernyms: []string{"entity.n.01"}},
		{Key: "pet.n.01", POS: lexicon.Noun, Lemmas: eng("pet"), Hypernyms: []string{"entity.n.01"}},
		{Key: "dog.n.01", POS: lexicon.Noun, Lemmas: eng("dog"), Hypernyms: []string{"animal.n.01", "pet.n.01"}},
		{Key: "cat.n.01", POS: lexicon.Noun, Lemmas: eng("cat"), Hypernyms: []string{"animal.n.01"}},
		{Key: "puppy.n.01", POS: lexicon.Noun, Lemmas: eng("puppy"), Hypernyms: []string{"dog.n.01"}},
	}
}

// testCLI returns a CLI whose config file points at a fixture lexicon
// in a temp dir.
func testCLI(t *testing.T) *CLI {
	t.Helper()
	dir := t.TempDir()

	dbPath := filepath.Join(dir, "lexicon.db")
	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	if _, err := store.Import(context.Background(), fixtureSynsets(), "fixture"); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	store.Close()

	cfg := config.Default()
	cfg.Lexicon.Path = dbPath
	cfg.Cache.Dir = filepath.Join(dir, "cache")
	cfg.Session.Dir = filepath.Join(dir, "sessions")
	cfgPath := filepath.Join(dir, "config.toml")
	if err := config.Write(cfgPath, cfg, false); err != nil {
		t.Fatalf("config.Write() error = %v", err)
	}

	c := New(&bytes.Buffer{}, LogInfo)
	c.configPath = cfgPath
	return c
}

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := []string{"import", "stats", "show", "paths", "search", "browse", "serve", "config", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
	for _, flag := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestNewRunner(t *testing.T) {
	c := testCLI(t)
	runner, err := c.newRunner(context.Background())
	if err != nil {
		t.Fatalf("newRunner() error = %v", err)
	}
	defer runner.Close()

	snap, err := runner.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if st := snap.Stats(); st.Nodes != 6 || st.MaxSize != 6 {
		t.Errorf("Stats() = %+v, want 6 nodes and max size 6", st)
	}
}

func TestNewRunner_NoLexicon(t *testing.T) {
	c := testCLI(t)
	cfg, err := c.config()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Lexicon.Path = filepath.Join(t.TempDir(), "missing.db")

	_, err = c.newRunner(context.Background())
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("newRunner() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[graph]\ngraph_node_limit = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := New(&bytes.Buffer{}, LogInfo)
	c.configPath = path
	if _, err := c.config(); err == nil {
		t.Error("config() error = nil for graph_node_limit = 3")
	}
}

func TestBackends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, backend := range []string{"none", "file"} {
		ch, err := newCache(ctx, config.CacheConfig{Backend: backend, Dir: dir})
		if err != nil {
			t.Errorf("newCache(%s) error = %v", backend, err)
			continue
		}
		ch.Close()
	}

	store, err := newSessionStore(ctx, config.SessionConfig{Backend: "memory"})
	if _, ok := store.(*session.MemoryStore); err != nil || !ok {
		t.Errorf("newSessionStore(memory) = %T, %v", store, err)
	}
	store, err = newSessionStore(ctx, config.SessionConfig{Backend: "file", Dir: dir})
	if _, ok := store.(*session.FileStore); err != nil || !ok {
		t.Errorf("newSessionStore(file) = %T, %v", store, err)
	}
}

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "ab"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"one.json", filepath.Join("ab", "two.json")} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count, err := clearDir(dir)
	if err != nil || count != 2 {
		t.Errorf("clearDir() = %d, %v, want 2", count, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("dir not empty after clear: %v", entries)
	}

	if count, err := clearDir(filepath.Join(dir, "missing")); count != 0 || err != nil {
		t.Errorf("clearDir(missing) = %d, %v", count, err)
	}
}

func TestWriteTree(t *testing.T) {
	c := testCLI(t)
	ctx := context.Background()
	runner, err := c.newRunner(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer runner.Close()

	view, err := runner.Explore(ctx, pipeline.Options{Root: "animal.n.01"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeReport(&buf, view)
	writeTree(&buf, view.Tree, view.Snapshot().Kind)
	out := buf.String()

	for _, want := range []string{"ELEMENT animal.n.01.animal", "has total 4", "└── ", "puppy.n.01.puppy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatPath(t *testing.T) {
	got := formatPath([]pipeline.PathStep{{Key: "a", Name: "entity"}, {Key: "b", Name: "dog"}})
	if got != "entity → dog" {
		t.Errorf("formatPath() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"a domesticated canid", 8, "a domes…"},
		{"  padded  ", 10, "padded"},
		{"实体实体实体", 3, "实体…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
