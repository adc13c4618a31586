// Package memory implements [lexicon.Lexicon] over in-process maps.
//
// It is built from [lexicon.Synset] records, either directly with [New] or
// from a JSON array with [Load]. Suitable for tests, fixtures and small
// custom hierarchies; full WordNet releases belong in the sqlite store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/synsetree/pkg/dag"
	"github.com/matzehuels/synsetree/pkg/lexicon"
)

// Lexicon is an immutable in-memory lexicon.
type Lexicon struct {
	synsets []lexicon.Synset
	byKey   map[string]*lexicon.Synset
	byLemma map[string]map[string][]string // lang -> lemma -> synset keys
}

var _ lexicon.Lexicon = (*Lexicon)(nil)

// New indexes the given records. Keys must be unique and non-empty.
func New(synsets []lexicon.Synset) (*Lexicon, error) {
	l := &Lexicon{
		synsets: slices.Clone(synsets),
		byKey:   make(map[string]*lexicon.Synset, len(synsets)),
		byLemma: make(map[string]map[string][]string),
	}
	for i := range l.synsets {
		s := &l.synsets[i]
		if s.Key == "" {
			return nil, fmt.Errorf("synset %d: empty key", i)
		}
		if _, dup := l.byKey[s.Key]; dup {
			return nil, fmt.Errorf("synset %d: duplicate key %q", i, s.Key)
		}
		l.byKey[s.Key] = s
		for lang, lemmas := range s.Lemmas {
			idx := l.byLemma[lang]
			if idx == nil {
				idx = make(map[string][]string)
				l.byLemma[lang] = idx
			}
			for _, lemma := range lemmas {
				idx[lemma] = append(idx[lemma], s.Key)
			}
		}
	}
	return l, nil
}

// Load decodes a JSON array of synset records and indexes it.
func Load(r io.Reader) (*Lexicon, error) {
	var synsets []lexicon.Synset
	if err := json.NewDecoder(r).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode synsets: %w", err)
	}
	return New(synsets)
}

func (l *Lexicon) AllEdges(_ context.Context, pos lexicon.POS) ([]dag.Edge, error) {
	return lexicon.Edges(l.synsets, pos), nil
}

func (l *Lexicon) DisplayName(_ context.Context, key, lang string) (string, error) {
	s, ok := l.byKey[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", lexicon.ErrNotFound, key)
	}
	return lexicon.FullName(key, s.Lemmas[lang]), nil
}

func (l *Lexicon) Definition(_ context.Context, key string) (string, error) {
	s, ok := l.byKey[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", lexicon.ErrNotFound, key)
	}
	return s.Definition, nil
}

func (l *Lexicon) Lookup(_ context.Context, key string) (lexicon.Sense, error) {
	s, ok := l.byKey[key]
	if !ok {
		return lexicon.Sense{}, fmt.Errorf("%w: %q", lexicon.ErrNotFound, key)
	}
	return sense(s), nil
}

func (l *Lexicon) Languages(context.Context) ([]string, error) {
	return slices.Sorted(maps.Keys(l.byLemma)), nil
}

func (l *Lexicon) SearchLemmas(_ context.Context, keyword, lang string, pos lexicon.POS) ([]string, error) {
	var matches []string
	for lemma, keys := range l.byLemma[lang] {
		if !strings.Contains(lemma, keyword) {
			continue
		}
		if slices.ContainsFunc(keys, func(k string) bool { return lexicon.MatchesPOS(l.byKey[k].POS, pos) }) {
			matches = append(matches, lemma)
		}
	}
	slices.Sort(matches)
	return lexicon.OrderMatches(matches, keyword), nil
}

func (l *Lexicon) SensesOf(_ context.Context, lemma, lang string, pos lexicon.POS) ([]lexicon.Sense, error) {
	var out []lexicon.Sense
	for _, k := range l.byLemma[lang][lemma] {
		if s := l.byKey[k]; lexicon.MatchesPOS(s.POS, pos) {
			out = append(out, sense(s))
		}
	}
	return out, nil
}

func (l *Lexicon) Close() error { return nil }

func sense(s *lexicon.Synset) lexicon.Sense {
	return lexicon.Sense{Key: s.Key, POS: s.POS, HasGloss: s.Definition != ""}
}
