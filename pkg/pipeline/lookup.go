package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/matzehuels/synsetree/pkg/classify"
	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/lexicon"
)

// SenseInfo describes one sense for display.
type SenseInfo struct {
	Key        string        `json:"key"`
	Name       string        `json:"name"`
	Definition string        `json:"definition,omitempty"`
	POS        lexicon.POS   `json:"pos"`
	Kind       classify.Kind `json:"kind"`
	Size       int           `json:"size"`
	Paths      [][]PathStep  `json:"hypernym_paths,omitempty"`
}

// PathStep is one sense on a hypernym path.
type PathStep struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Languages lists the languages display names are available in.
func (r *Runner) Languages(ctx context.Context) ([]string, error) {
	langs, err := r.Lexicon.Languages(ctx)
	if err != nil {
		return nil, stageErr("languages", err)
	}
	return langs, nil
}

// Search returns lemma names in lang containing keyword, exact match
// first. A blank keyword is an EMPTY_SELECTION error; no matches is an
// empty result.
func (r *Runner) Search(ctx context.Context, keyword, lang string) ([]string, error) {
	if err := apperrors.ValidateKeyword(keyword); err != nil {
		return nil, err
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	if err := apperrors.ValidateLanguage(lang); err != nil {
		return nil, err
	}
	matches, err := r.Lexicon.SearchLemmas(ctx, strings.TrimSpace(keyword), lang, r.POS)
	if err != nil {
		return nil, stageErr("search", err)
	}
	return matches, nil
}

// Resolve turns user input into candidate senses: a sense key resolves to
// itself, anything else is treated as a lemma in lang. Only senses present
// in the current graph are returned. Input resolving to nothing yields an
// EMPTY_SELECTION error.
func (r *Runner) Resolve(ctx context.Context, input, lang string) ([]SenseInfo, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, Classify(ErrEmptySelection)
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	if err := apperrors.ValidateLanguage(lang); err != nil {
		return nil, err
	}
	snap, err := r.Snapshot()
	if err != nil {
		return nil, err
	}

	var senses []lexicon.Sense
	if sense, err := r.Lexicon.Lookup(ctx, input); err == nil {
		senses = []lexicon.Sense{sense}
	} else if !errors.Is(err, lexicon.ErrNotFound) {
		return nil, stageErr("lookup", err)
	} else {
		senses, err = r.Lexicon.SensesOf(ctx, input, lang, r.POS)
		if err != nil {
			return nil, stageErr("senses", err)
		}
	}

	out := make([]SenseInfo, 0, len(senses))
	for _, s := range senses {
		if !snap.Has(s.Key) {
			continue
		}
		info, err := r.describe(ctx, s, lang, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	if len(out) == 0 {
		return nil, Classify(ErrEmptySelection)
	}
	return out, nil
}

// Describe returns display details of key, including every hypernym path
// from a root sense down to it.
func (r *Runner) Describe(ctx context.Context, key, lang string) (*SenseInfo, error) {
	if err := apperrors.ValidateSenseKey(key); err != nil {
		return nil, err
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	if err := apperrors.ValidateLanguage(lang); err != nil {
		return nil, err
	}
	sense, err := r.Lexicon.Lookup(ctx, key)
	if err != nil {
		return nil, stageErr("lookup", err)
	}
	return r.describe(ctx, sense, lang, true)
}

func (r *Runner) describe(ctx context.Context, sense lexicon.Sense, lang string, withPaths bool) (*SenseInfo, error) {
	snap, err := r.Snapshot()
	if err != nil {
		return nil, err
	}
	name := r.namer(ctx, lang)
	info := &SenseInfo{
		Key:  sense.Key,
		Name: name(sense.Key),
		POS:  sense.POS,
		Kind: classify.Terminal,
		Size: 1,
	}
	if sense.HasGloss {
		if info.Definition, err = r.Lexicon.Definition(ctx, sense.Key); err != nil {
			return nil, stageErr("definition", err)
		}
	}
	// Senses without any hypernym relation are not in the graph.
	if size, ok := snap.Size(sense.Key); ok {
		info.Size = size
		info.Kind = snap.Kind(sense.Key)
	}
	if !withPaths {
		return info, nil
	}

	paths := snap.Graph().PathsToSource(sense.Key)
	if paths == nil {
		paths = [][]string{{sense.Key}}
	}
	names := make(map[string]string)
	for _, path := range paths {
		steps := make([]PathStep, len(path))
		for i, key := range path {
			n, ok := names[key]
			if !ok {
				n = name(key)
				names[key] = n
			}
			steps[i] = PathStep{Key: key, Name: n}
		}
		info.Paths = append(info.Paths, steps)
	}
	return info, nil
}
