// Package config loads synsetree settings from a TOML file and the
// environment.
//
// Priority is environment > file > defaults. Defaults live in env-default
// tags; every key can be overridden with a SYNSETREE_* variable:
//
//	[graph]
//	graph_node_limit = 200
//	language = "eng"
//
// CLI flags are applied on top of the loaded value by the caller.
package config

import (
	"time"
)

// MinNodeLimit is the smallest accepted graph_node_limit.
const MinNodeLimit = 5

// DefaultLexiconURL is the Open English WordNet release imported when no
// source is given.
const DefaultLexiconURL = "https://en-word.net/static/english-wordnet-2024.json.gz"

// Config is the root configuration.
type Config struct {
	Graph   GraphConfig   `toml:"graph"`
	Lexicon LexiconConfig `toml:"lexicon"`
	Server  ServerConfig  `toml:"server"`
	Cache   CacheConfig   `toml:"cache"`
	Session SessionConfig `toml:"session"`
	Log     LogConfig     `toml:"log"`
}

// GraphConfig controls extraction.
type GraphConfig struct {
	NodeLimit int    `toml:"graph_node_limit" env:"SYNSETREE_GRAPH_NODE_LIMIT" env-default:"200"`
	Language  string `toml:"language"         env:"SYNSETREE_LANGUAGE"         env-default:"eng"`
	POS       string `toml:"pos"              env:"SYNSETREE_POS"              env-default:"n"`
}

// LexiconConfig locates the lexicon database and its import source.
type LexiconConfig struct {
	Path string `toml:"path" env:"SYNSETREE_LEXICON_PATH"`
	URL  string `toml:"url"  env:"SYNSETREE_LEXICON_URL"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `toml:"addr"             env:"SYNSETREE_SERVER_ADDR"             env-default:"127.0.0.1:8080"`
	MaxLimit        int           `toml:"max_limit"        env:"SYNSETREE_SERVER_MAX_LIMIT"        env-default:"2000"`
	ReadTimeout     time.Duration `toml:"read_timeout"     env:"SYNSETREE_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `toml:"write_timeout"    env:"SYNSETREE_SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SYNSETREE_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CacheConfig selects the download cache backend: "file", "redis" or "none".
type CacheConfig struct {
	Backend       string        `toml:"backend"        env:"SYNSETREE_CACHE_BACKEND"        env-default:"file"`
	Dir           string        `toml:"dir"            env:"SYNSETREE_CACHE_DIR"`
	RedisAddr     string        `toml:"redis_addr"     env:"SYNSETREE_CACHE_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string        `toml:"redis_password" env:"SYNSETREE_CACHE_REDIS_PASSWORD"`
	RedisDB       int           `toml:"redis_db"       env:"SYNSETREE_CACHE_REDIS_DB"`
	TTL           time.Duration `toml:"ttl"            env:"SYNSETREE_CACHE_TTL"            env-default:"720h"`
}

// SessionConfig selects the drill-down session backend: "memory", "file"
// or "mongo".
type SessionConfig struct {
	Backend       string        `toml:"backend"        env:"SYNSETREE_SESSION_BACKEND"        env-default:"memory"`
	Dir           string        `toml:"dir"            env:"SYNSETREE_SESSION_DIR"`
	MongoURI      string        `toml:"mongo_uri"      env:"SYNSETREE_SESSION_MONGO_URI"      env-default:"mongodb://localhost:27017"`
	MongoDatabase string        `toml:"mongo_database" env:"SYNSETREE_SESSION_MONGO_DATABASE" env-default:"synsetree"`
	TTL           time.Duration `toml:"ttl"            env:"SYNSETREE_SESSION_TTL"            env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" env:"SYNSETREE_LOG_LEVEL" env-default:"info"`
}
