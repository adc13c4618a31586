package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/synsetree/pkg/dag"
	"github.com/matzehuels/synsetree/pkg/lexicon"
)

var fixture = []lexicon.Synset{
	{Key: "entity.n.01", POS: lexicon.Noun, Definition: "that which is perceived to exist",
		Lemmas: map[string][]string{"eng": {"entity"}, "cmn": {"实体"}}},
	{Key: "animal.n.01", POS: lexicon.Noun, Definition: "a living organism",
		Lemmas: map[string][]string{"eng": {"animal", "beast"}}, Hypernyms: []string{"entity.n.01"}},
	{Key: "dog.n.01", POS: lexicon.Noun, Definition: "a domesticated canid",
		Lemmas: map[string][]string{"eng": {"dog", "domestic_dog"}, "cmn": {"狗"}}, Hypernyms: []string{"animal.n.01"}},
	{Key: "hot_dog.n.01", POS: lexicon.Noun,
		Lemmas: map[string][]string{"eng": {"hot_dog", "Dogfood"}}, Hypernyms: []string{"entity.n.01", "entity.n.01"}},
	{Key: "dog.v.01", POS: lexicon.Verb, Definition: "go after with the intent to catch",
		Lemmas: map[string][]string{"eng": {"dog", "chase"}}},
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	stats, err := s.Import(context.Background(), fixture, "fixture")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Synsets != 5 || stats.Hypernyms != 4 {
		t.Fatalf("Import() stats = %+v", stats)
	}
	return s
}

func TestStore_AllEdges(t *testing.T) {
	s := setupStore(t)
	got, err := s.AllEdges(context.Background(), lexicon.Noun)
	if err != nil {
		t.Fatalf("AllEdges() error = %v", err)
	}
	want := []dag.Edge{
		{From: "entity.n.01", To: "animal.n.01"},
		{From: "animal.n.01", To: "dog.n.01"},
		{From: "entity.n.01", To: "hot_dog.n.01"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllEdges() = %v, want %v", got, want)
	}
}

func TestStore_LookupAndNames(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	sense, err := s.Lookup(ctx, "dog.n.01")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if want := (lexicon.Sense{Key: "dog.n.01", POS: lexicon.Noun, HasGloss: true}); sense != want {
		t.Errorf("Lookup() = %+v, want %+v", sense, want)
	}
	if _, err := s.Lookup(ctx, "cat.n.01"); !errors.Is(err, lexicon.ErrNotFound) {
		t.Errorf("Lookup(missing) error = %v, want ErrNotFound", err)
	}

	name, err := s.DisplayName(ctx, "dog.n.01", "eng")
	if err != nil || name != "dog.n.01.dog,domestic_dog" {
		t.Errorf("DisplayName(eng) = %q, %v", name, err)
	}
	name, _ = s.DisplayName(ctx, "dog.n.01", "cmn")
	if name != "dog.n.01.狗" {
		t.Errorf("DisplayName(cmn) = %q", name)
	}
	if _, err := s.DisplayName(ctx, "cat.n.01", "eng"); !errors.Is(err, lexicon.ErrNotFound) {
		t.Errorf("DisplayName(missing) error = %v, want ErrNotFound", err)
	}

	def, _ := s.Definition(ctx, "hot_dog.n.01")
	if def != "" {
		t.Errorf("Definition(hot_dog) = %q, want empty", def)
	}
}

func TestStore_Search(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	got, err := s.SearchLemmas(ctx, "dog", "eng", lexicon.Noun)
	if err != nil {
		t.Fatalf("SearchLemmas() error = %v", err)
	}
	if want := []string{"dog", "domestic_dog", "hot_dog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SearchLemmas(dog) = %v, want %v", got, want)
	}

	got, _ = s.SearchLemmas(ctx, "t_d", "eng", "")
	if want := []string{"hot_dog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SearchLemmas(t_d) = %v, want %v", got, want)
	}

	senses, _ := s.SensesOf(ctx, "dog", "eng", "")
	if len(senses) != 2 || senses[0].Key != "dog.n.01" || senses[1].Key != "dog.v.01" {
		t.Errorf("SensesOf(dog) = %v", senses)
	}

	langs, _ := s.Languages(ctx)
	if want := []string{"cmn", "eng"}; !reflect.DeepEqual(langs, want) {
		t.Errorf("Languages() = %v, want %v", langs, want)
	}
	if src, _ := s.Source(ctx); src != "fixture" {
		t.Errorf("Source() = %q, want fixture", src)
	}
}

func TestStore_ReimportReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, err := s.Import(ctx, fixture, "first"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := s.Import(ctx, fixture[:2], "second"); err != nil {
		t.Fatalf("re-import: %v", err)
	}
	edges, _ := s.AllEdges(ctx, lexicon.Noun)
	if len(edges) != 1 {
		t.Errorf("AllEdges() after re-import = %v, want 1 edge", edges)
	}
	if src, _ := s.Source(ctx); src != "second" {
		t.Errorf("Source() = %q, want second", src)
	}
}
