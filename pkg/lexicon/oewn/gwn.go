package oewn

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/matzehuels/synsetree/pkg/lexicon"
)

// Stats reports what a parser read.
type Stats struct {
	Synsets   int // synset records emitted
	Lemmas    int // lemma names attached to synsets
	Hypernyms int // hypernym links kept
	Skipped   int // relations or senses pointing at unknown synsets
}

type gwnDocument struct {
	Graph []gwnLexicon `json:"@graph"`
}

type gwnLexicon struct {
	Language string      `json:"language"`
	Entries  []gwnEntry  `json:"entry"`
	Synsets  []gwnSynset `json:"synset"`
}

type gwnEntry struct {
	ID    string     `json:"@id"`
	Lemma gwnLemma   `json:"lemma"`
	Sense []gwnSense `json:"sense"`
}

type gwnLemma struct {
	WrittenForm  string `json:"writtenForm"`
	PartOfSpeech string `json:"partOfSpeech"`
}

type gwnSense struct {
	ID     string `json:"@id"`
	Synset string `json:"synset"`
}

type gwnSynset struct {
	ID           string          `json:"@id"`
	PartOfSpeech string          `json:"partOfSpeech"`
	Definition   json.RawMessage `json:"definition"`
	Relations    []gwnRelation   `json:"relations"`
}

type gwnRelation struct {
	RelType string `json:"relType"`
	Target  string `json:"target"`
}

// ParseGWN reads a GWN-LMF JSON document. Gzipped input is detected and
// decompressed. Synsets are emitted in document order; each lexicon's
// lemmas are filed under its language.
func ParseGWN(r io.Reader) ([]lexicon.Synset, Stats, error) {
	var stats Stats
	r, err := maybeGunzip(r)
	if err != nil {
		return nil, stats, err
	}

	var doc gwnDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, stats, fmt.Errorf("decode GWN-LMF JSON: %w", err)
	}

	var out []lexicon.Synset
	index := make(map[string]int) // synset ID -> position in out

	for _, lex := range doc.Graph {
		for _, syn := range lex.Synsets {
			if syn.ID == "" {
				continue
			}
			if _, dup := index[syn.ID]; dup {
				continue
			}
			index[syn.ID] = len(out)
			out = append(out, lexicon.Synset{
				Key:        syn.ID,
				POS:        lexicon.POS(syn.PartOfSpeech),
				Definition: definitionText(syn.Definition),
				Lemmas:     make(map[string][]string),
			})
		}
	}

	for _, lex := range doc.Graph {
		lang := normalizeLanguage(lex.Language)
		for _, entry := range lex.Entries {
			lemma := entry.Lemma.WrittenForm
			if lemma == "" {
				continue
			}
			for _, sense := range entry.Sense {
				i, ok := index[sense.Synset]
				if !ok {
					stats.Skipped++
					continue
				}
				out[i].Lemmas[lang] = appendUnique(out[i].Lemmas[lang], lemma)
			}
		}
		for _, syn := range lex.Synsets {
			i, ok := index[syn.ID]
			if !ok {
				continue
			}
			for _, rel := range syn.Relations {
				if rel.RelType != "hypernym" {
					continue
				}
				if _, known := index[rel.Target]; !known {
					stats.Skipped++
					continue
				}
				out[i].Hypernyms = appendUnique(out[i].Hypernyms, rel.Target)
			}
		}
	}

	for _, s := range out {
		stats.Synsets++
		stats.Hypernyms += len(s.Hypernyms)
		for _, l := range s.Lemmas {
			stats.Lemmas += len(l)
		}
	}
	return out, stats, nil
}

// definitionText accepts the shapes seen in the wild: a list of strings,
// a list of {"gloss": ...} or {"@value": ...} objects, or a plain string.
func definitionText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		if len(list) > 0 {
			return list[0]
		}
		return ""
	}
	var objs []struct {
		Gloss string `json:"gloss"`
		Value string `json:"@value"`
	}
	if json.Unmarshal(raw, &objs) == nil && len(objs) > 0 {
		if objs[0].Gloss != "" {
			return objs[0].Gloss
		}
		return objs[0].Value
	}
	return ""
}

// normalizeLanguage maps BCP 47 codes used by GWN-LMF to the ISO 639-3
// codes WordNet front ends use.
func normalizeLanguage(lang string) string {
	switch lang {
	case "", "en", "en-GB", "en-US":
		return lexicon.DefaultLanguage
	case "zh", "zh-CN", "cmn-Hans":
		return "cmn"
	case "ja":
		return "jpn"
	case "fr":
		return "fra"
	case "es":
		return "spa"
	}
	return lang
}

func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if bytes.Equal(magic, []byte{0x1f, 0x8b}) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	}
	return br, nil
}

func appendUnique(sl []string, s string) []string {
	for _, v := range sl {
		if v == s {
			return sl
		}
	}
	return append(sl, s)
}
