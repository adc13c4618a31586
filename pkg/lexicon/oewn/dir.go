package oewn

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/synsetree/pkg/lexicon"
)

// oewnSynset is one record of a {pos}.{category}.json file.
type oewnSynset struct {
	Members      []string `json:"members"`
	Hypernym     []string `json:"hypernym"`
	Definition   []string `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
}

// ParseDir reads the synset files of an OEWN JSON directory. Files are
// read in lexical order and synsets within a file by ID, so the output is
// stable. Lemma names come from each synset's members, in order.
func ParseDir(dir string) ([]lexicon.Synset, Stats, error) {
	var stats Stats
	info, err := os.Stat(dir)
	if err != nil {
		return nil, stats, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := globSynsetFiles(dir)
	if err != nil {
		return nil, stats, fmt.Errorf("glob synset files: %w", err)
	}
	if len(files) == 0 {
		return nil, stats, fmt.Errorf("%s: no synset files (noun.*.json, ...)", dir)
	}

	var out []lexicon.Synset
	known := make(map[string]struct{})
	for _, path := range files {
		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, stats, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for _, id := range slices.Sorted(maps.Keys(synsets)) {
			if _, dup := known[id]; dup {
				continue
			}
			known[id] = struct{}{}
			s := synsets[id]
			rec := lexicon.Synset{
				Key:       id,
				POS:       lexicon.POS(s.PartOfSpeech),
				Lemmas:    map[string][]string{lexicon.DefaultLanguage: s.Members},
				Hypernyms: s.Hypernym,
			}
			if rec.POS == "" {
				rec.POS = posFromFile(path)
			}
			if len(s.Definition) > 0 {
				rec.Definition = s.Definition[0]
			}
			out = append(out, rec)
		}
	}

	for i := range out {
		var kept []string
		for _, h := range out[i].Hypernyms {
			if _, ok := known[h]; !ok {
				stats.Skipped++
				continue
			}
			kept = append(kept, h)
		}
		out[i].Hypernyms = kept
		stats.Synsets++
		stats.Hypernyms += len(kept)
		stats.Lemmas += len(out[i].Lemmas[lexicon.DefaultLanguage])
	}
	return out, stats, nil
}

func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds files named {pos}.{category}.json.
func globSynsetFiles(dir string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	slices.Sort(result)
	return result, nil
}

func posFromFile(path string) lexicon.POS {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "noun."):
		return lexicon.Noun
	case strings.HasPrefix(base, "verb."):
		return lexicon.Verb
	case strings.HasPrefix(base, "adj."):
		return lexicon.Adjective
	case strings.HasPrefix(base, "adv."):
		return lexicon.Adverb
	}
	return ""
}
