// Package sqlite implements [lexicon.Lexicon] on a SQLite database.
//
// A database is populated once with [Store.Import] (see the import
// command) and then opened read-mostly by every other command. Edge order
// follows import order, so graphs built from the same database are
// identical across runs.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/matzehuels/synsetree/pkg/dag"
	"github.com/matzehuels/synsetree/pkg/lexicon"
)

//go:embed schema.sql
var migrationsSQL string

// Store is a SQLite-backed lexicon. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

var _ lexicon.Lexicon = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_foreign_keys=on&_journal_mode=WAL"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if path == ":memory:" {
		// Each connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database handle and applies the schema.
func New(db *sql.DB) (*Store, error) {
	if err := InitDB(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// InitDB runs the embedded schema statements on db.
func InitDB(db *sql.DB) error {
	for _, stmt := range strings.Split(migrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// ImportStats reports what [Store.Import] wrote.
type ImportStats struct {
	Synsets   int
	Lemmas    int
	Hypernyms int
}

// Import replaces the database contents with synsets in a single
// transaction. Record order is kept as the edge order.
func (s *Store) Import(ctx context.Context, synsets []lexicon.Synset, source string) (ImportStats, error) {
	var stats ImportStats
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"hypernyms", "lemmas", "synsets", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return stats, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	insSynset, err := tx.PrepareContext(ctx, `INSERT INTO synsets (key, pos, definition, seq) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return stats, err
	}
	defer insSynset.Close()
	insLemma, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO lemmas (synset_key, lang, lemma, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return stats, err
	}
	defer insLemma.Close()
	insHyper, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO hypernyms (hyponym, hypernym, position) VALUES (?, ?, ?)`)
	if err != nil {
		return stats, err
	}
	defer insHyper.Close()

	for i, syn := range synsets {
		if syn.Key == "" {
			return stats, fmt.Errorf("synset %d: empty key", i)
		}
		if _, err := insSynset.ExecContext(ctx, syn.Key, string(syn.POS), syn.Definition, i); err != nil {
			return stats, fmt.Errorf("insert synset %q: %w", syn.Key, err)
		}
		stats.Synsets++
		for lang, lemmas := range syn.Lemmas {
			for pos, lemma := range lemmas {
				if _, err := insLemma.ExecContext(ctx, syn.Key, lang, lemma, pos); err != nil {
					return stats, fmt.Errorf("insert lemma %q: %w", lemma, err)
				}
				stats.Lemmas++
			}
		}
		for pos, h := range syn.Hypernyms {
			if _, err := insHyper.ExecContext(ctx, syn.Key, h, pos); err != nil {
				return stats, fmt.Errorf("insert hypernym %q -> %q: %w", h, syn.Key, err)
			}
			stats.Hypernyms++
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO meta (name, value) VALUES ('source', ?)`, source); err != nil {
		return stats, fmt.Errorf("write meta: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("commit: %w", err)
	}
	return stats, nil
}

// Source returns the source recorded by the last import, or "".
func (s *Store) Source(ctx context.Context) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE name = 'source'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

// posFilter returns a SQL condition and args restricting alias.pos to pos.
func posFilter(alias string, pos lexicon.POS) (string, []any) {
	switch pos {
	case "":
		return "1 = 1", nil
	case lexicon.Adjective:
		return alias + ".pos IN (?, ?)", []any{string(lexicon.Adjective), string(lexicon.Satellite)}
	default:
		return alias + ".pos = ?", []any{string(pos)}
	}
}

func (s *Store) AllEdges(ctx context.Context, pos lexicon.POS) ([]dag.Edge, error) {
	cond, args := posFilter("s", pos)
	rows, err := s.db.QueryContext(ctx, `
		SELECT h.hypernym, h.hyponym
		FROM hypernyms h JOIN synsets s ON s.key = h.hyponym
		WHERE `+cond+`
		ORDER BY s.seq, h.position`, args...)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}
	defer rows.Close()

	var edges []dag.Edge
	for rows.Next() {
		var e dag.Edge
		if err := rows.Scan(&e.From, &e.To); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

func (s *Store) DisplayName(ctx context.Context, key, lang string) (string, error) {
	if _, err := s.Lookup(ctx, key); err != nil {
		return "", err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT lemma FROM lemmas WHERE synset_key = ? AND lang = ? ORDER BY position`, key, lang)
	if err != nil {
		return "", fmt.Errorf("query lemmas: %w", err)
	}
	lemmas, err := scanStrings(rows)
	if err != nil {
		return "", err
	}
	return lexicon.FullName(key, lemmas), nil
}

func (s *Store) Definition(ctx context.Context, key string) (string, error) {
	var def string
	err := s.db.QueryRowContext(ctx, `SELECT definition FROM synsets WHERE key = ?`, key).Scan(&def)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", lexicon.ErrNotFound, key)
	}
	return def, err
}

func (s *Store) Lookup(ctx context.Context, key string) (lexicon.Sense, error) {
	var (
		pos string
		def string
	)
	err := s.db.QueryRowContext(ctx, `SELECT pos, definition FROM synsets WHERE key = ?`, key).Scan(&pos, &def)
	if errors.Is(err, sql.ErrNoRows) {
		return lexicon.Sense{}, fmt.Errorf("%w: %q", lexicon.ErrNotFound, key)
	}
	if err != nil {
		return lexicon.Sense{}, fmt.Errorf("lookup %q: %w", key, err)
	}
	return lexicon.Sense{Key: key, POS: lexicon.POS(pos), HasGloss: def != ""}, nil
}

func (s *Store) Languages(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT lang FROM lemmas ORDER BY lang`)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	return scanStrings(rows)
}

func (s *Store) SearchLemmas(ctx context.Context, keyword, lang string, pos lexicon.POS) ([]string, error) {
	cond, args := posFilter("s", pos)
	pattern := "%" + escapeLike(keyword) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT l.lemma
		FROM lemmas l JOIN synsets s ON s.key = l.synset_key
		WHERE l.lang = ? AND l.lemma LIKE ? ESCAPE '\' AND `+cond+`
		ORDER BY l.lemma`, append([]any{lang, pattern}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("search lemmas: %w", err)
	}
	matches, err := scanStrings(rows)
	if err != nil {
		return nil, err
	}
	// LIKE is case-insensitive for ASCII; keep substring semantics exact.
	exact := matches[:0]
	for _, m := range matches {
		if strings.Contains(m, keyword) {
			exact = append(exact, m)
		}
	}
	return lexicon.OrderMatches(exact, keyword), nil
}

func (s *Store) SensesOf(ctx context.Context, lemma, lang string, pos lexicon.POS) ([]lexicon.Sense, error) {
	cond, args := posFilter("s", pos)
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.key, s.pos, s.definition
		FROM lemmas l JOIN synsets s ON s.key = l.synset_key
		WHERE l.lang = ? AND l.lemma = ? AND `+cond+`
		ORDER BY s.seq`, append([]any{lang, lemma}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("query senses: %w", err)
	}
	defer rows.Close()

	var out []lexicon.Sense
	for rows.Next() {
		var key, p, def string
		if err := rows.Scan(&key, &p, &def); err != nil {
			return nil, err
		}
		out = append(out, lexicon.Sense{Key: key, POS: lexicon.POS(p), HasGloss: def != ""})
	}
	return out, rows.Err()
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
