package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "synsetree"

// DefaultPath returns $XDG_CONFIG_HOME/synsetree/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// DataDir returns the directory holding the lexicon database.
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locate home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// CacheDir returns the default download cache directory.
func CacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("config: locate cache dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}
