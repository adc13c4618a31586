package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from path and the environment.
//
// If path is empty the default location is used, and a missing file there
// is not an error: configuration then comes from the environment and
// defaults only. An explicit path must exist.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		def, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = def
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration produced by defaults alone, ignoring
// the environment.
func Default() *Config {
	return &Config{
		Graph:   GraphConfig{NodeLimit: 200, Language: "eng", POS: "n"},
		Lexicon: LexiconConfig{URL: DefaultLexiconURL},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			MaxLimit:        2000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Cache: CacheConfig{Backend: "file", RedisAddr: "localhost:6379", TTL: 720 * time.Hour},
		Session: SessionConfig{
			Backend:       "memory",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "synsetree",
			TTL:           24 * time.Hour,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Write encodes cfg as TOML to path, creating parent directories. It
// refuses to overwrite an existing file unless force is set.
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("config: encode: %w", err)
	}
	return f.Close()
}

func (c *Config) resolvePaths() error {
	if c.Lexicon.URL == "" {
		c.Lexicon.URL = DefaultLexiconURL
	}
	if c.Lexicon.Path == "" {
		dir, err := DataDir()
		if err != nil {
			return err
		}
		c.Lexicon.Path = filepath.Join(dir, "lexicon.db")
	}
	if c.Cache.Dir == "" {
		dir, err := CacheDir()
		if err != nil {
			return err
		}
		c.Cache.Dir = dir
	}
	return nil
}
