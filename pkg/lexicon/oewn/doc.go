// Package oewn reads Open English WordNet releases into [lexicon.Synset]
// records for import.
//
// Two distribution formats are supported:
//
//   - GWN-LMF JSON: a single JSON-LD document (optionally gzipped) whose
//     "@graph" holds one or more lexicons with entries, senses and synsets.
//     Parsed by [ParseGWN].
//   - OEWN JSON directory: the per-file layout of the english-wordnet
//     repository, with synsets keyed by ID in noun.*.json, verb.*.json and
//     so on. Parsed by [ParseDir].
//
// [Load] picks the right parser for a local path or URL. URLs are fetched
// through a [Fetcher], which retries transient failures and keeps the raw
// release in a [cache.Cache].
//
// Only "hypernym" relations become edges; instance hypernyms are left out
// so the graph matches WordNet's class hierarchy.
//
// [cache.Cache]: github.com/matzehuels/synsetree/pkg/cache.Cache
package oewn
