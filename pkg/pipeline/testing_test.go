package pipeline

import (
	"context"
	"testing"

	"github.com/matzehuels/synsetree/pkg/lexicon"
	"github.com/matzehuels/synsetree/pkg/lexicon/memory"
)

// fixtureSynsets is a small noun hierarchy with one shared hyponym:
//
//	entity -> animal -> dog -> puppy
//	entity -> animal -> cat
//	entity -> pet    -> dog
//
// lonely.n.01 has no hypernym relation and so is not in the graph.
func fixtureSynsets() []lexicon.Synset {
	eng := func(l ...string) map[string][]string { return map[string][]string{"eng": l} }
	return []lexicon.Synset{
		{Key: "entity.n.01", POS: lexicon.Noun, Definition: "that which is perceived to exist",
			Lemmas: map[string][]string{"eng": {"entity"}, "cmn": {"实体"}}},
		{Key: "animal.n.01", POS: lexicon.Noun, Definition: "a living organism",
			Lemmas: eng("animal", "beast"), Hypernyms: []string{"entity.n.01"}},
		{Key: "pet.n.01", POS: lexicon.Noun, Lemmas: eng("pet"), Hypernyms: []string{"entity.n.01"}},
		{Key: "dog.n.01", POS: lexicon.Noun, Definition: "a domesticated canid",
			Lemmas:    map[string][]string{"eng": {"dog", "domestic_dog"}, "cmn": {"狗"}},
			Hypernyms: []string{"animal.n.01", "pet.n.01"}},
		{Key: "cat.n.01", POS: lexicon.Noun, Lemmas: eng("cat"), Hypernyms: []string{"animal.n.01"}},
		{Key: "puppy.n.01", POS: lexicon.Noun, Lemmas: eng("puppy"), Hypernyms: []string{"dog.n.01"}},
		{Key: "lonely.n.01", POS: lexicon.Noun, Lemmas: eng("lonely")},
		{Key: "dog.v.01", POS: lexicon.Verb, Lemmas: eng("dog", "chase")},
	}
}

func newRunner(t *testing.T, synsets []lexicon.Synset) *Runner {
	t.Helper()
	lex, err := memory.New(synsets)
	if err != nil {
		t.Fatalf("memory.New() error = %v", err)
	}
	return NewRunner(lex, lexicon.Noun, nil)
}

func builtRunner(t *testing.T) *Runner {
	t.Helper()
	r := newRunner(t, fixtureSynsets())
	if _, err := r.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return r
}
