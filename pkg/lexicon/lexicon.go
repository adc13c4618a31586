// Package lexicon defines the boundary between synsetree and a lexical
// database such as WordNet.
//
// A [Lexicon] exposes exactly the capabilities the engine and its
// front ends need: the hypernym edge list for a part of speech, display
// names and definitions per sense, and lemma search. Implementations live
// in subpackages:
//
//   - [github.com/matzehuels/synsetree/pkg/lexicon/memory]: in-process maps,
//     used by tests and small fixtures
//   - [github.com/matzehuels/synsetree/pkg/lexicon/sqlite]: an imported
//     WordNet release in a SQLite file
//
// Source releases are parsed into [Synset] records by
// [github.com/matzehuels/synsetree/pkg/lexicon/oewn].
package lexicon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/synsetree/pkg/dag"
)

// ErrNotFound is returned when a sense key or lemma does not exist.
var ErrNotFound = errors.New("lexicon: not found")

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "eng"

// POS is a WordNet part of speech.
type POS string

const (
	Noun      POS = "n"
	Verb      POS = "v"
	Adjective POS = "a"
	Satellite POS = "s"
	Adverb    POS = "r"
)

// ParsePOS accepts a single-letter code or a full name.
func ParsePOS(s string) (POS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	case "a", "adj", "adjective":
		return Adjective, nil
	case "s", "satellite":
		return Satellite, nil
	case "r", "adv", "adverb":
		return Adverb, nil
	}
	return "", fmt.Errorf("unknown part of speech %q", s)
}

// Sense identifies one lexical sense. HasGloss and POS are passed through
// to front ends and never used by the graph algorithms.
type Sense struct {
	Key      string `json:"key"`
	POS      POS    `json:"pos"`
	HasGloss bool   `json:"has_gloss"`
}

// Synset is the import record for one sense: its lemmas per language and
// the keys of its hypernyms, in source order.
type Synset struct {
	Key        string              `json:"key"`
	POS        POS                 `json:"pos"`
	Definition string              `json:"definition,omitempty"`
	Lemmas     map[string][]string `json:"lemmas"` // language -> lemma names
	Hypernyms  []string            `json:"hypernyms,omitempty"`
}

// Lexicon is the set of lexicon capabilities synsetree depends on.
// Implementations must be safe for concurrent use.
type Lexicon interface {
	// AllEdges returns every (hypernym, hyponym) pair among senses of pos,
	// in a stable order.
	AllEdges(ctx context.Context, pos POS) ([]dag.Edge, error)

	// DisplayName returns the sense key followed by its lemma names in lang,
	// as built by [FullName].
	DisplayName(ctx context.Context, key, lang string) (string, error)

	// Definition returns the gloss of a sense, or "" if it has none.
	Definition(ctx context.Context, key string) (string, error)

	// Lookup resolves a sense key. It returns [ErrNotFound] if absent.
	Lookup(ctx context.Context, key string) (Sense, error)

	// Languages lists the languages lemma names are available in.
	Languages(ctx context.Context) ([]string, error)

	// SearchLemmas returns lemma names in lang containing keyword, an exact
	// match first and the rest in lexical order.
	SearchLemmas(ctx context.Context, keyword, lang string, pos POS) ([]string, error)

	// SensesOf returns the senses a lemma belongs to in lang.
	SensesOf(ctx context.Context, lemma, lang string, pos POS) ([]Sense, error)

	// Close releases resources held by the lexicon.
	Close() error
}

// FullName formats a display name as "<key>.<lemma1>,<lemma2>,...".
// With no lemmas the trailing separator is kept so the shape is stable.
func FullName(key string, lemmas []string) string {
	return key + "." + strings.Join(lemmas, ",")
}

// OrderMatches puts the exact match (if any) first and keeps the rest in
// the order given. Used by implementations of SearchLemmas.
func OrderMatches(matches []string, keyword string) []string {
	for i, m := range matches {
		if m == keyword {
			if i == 0 {
				return matches
			}
			out := make([]string, 0, len(matches))
			out = append(out, m)
			out = append(out, matches[:i]...)
			return append(out, matches[i+1:]...)
		}
	}
	return matches
}

// Edges derives the (hypernym, hyponym) edge list for pos from import
// records: for each synset of pos in order, one edge per hypernym.
func Edges(synsets []Synset, pos POS) []dag.Edge {
	var edges []dag.Edge
	for _, s := range synsets {
		if !MatchesPOS(s.POS, pos) {
			continue
		}
		for _, h := range s.Hypernyms {
			edges = append(edges, dag.Edge{From: h, To: s.Key})
		}
	}
	return edges
}

// MatchesPOS reports whether a sense of part of speech got belongs to the
// requested one. Adjective requests include satellites. An empty request
// matches everything.
func MatchesPOS(got, want POS) bool {
	if want == "" || got == want {
		return true
	}
	return want == Adjective && got == Satellite
}
