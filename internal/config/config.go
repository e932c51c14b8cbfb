// Package config handles plugin and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options are the per-wiki plugin settings, stored as settings.json in
// the data directory.
type Options struct {
	// DefaultCommand renders identifiers given without an explicit
	// command.
	DefaultCommand string `json:"default_command"`

	// UserTemplate is the user-defined output template, addressed as
	// the "user" command.
	UserTemplate string `json:"user_defined_output,omitempty"`

	// AuthorLimit caps the Vancouver author list; zero or negative
	// means no limit.
	AuthorLimit int    `json:"limit_authors_vancouver"`
	EtAlText    string `json:"et_al_vancouver"`

	// StripJournalDots removes the dots from the ISO journal
	// abbreviation.
	StripJournalDots bool `json:"remove_dot_from_journal_iso,omitempty"`

	// TwitterVia is the account credited in tweet intents, without '@'.
	TwitterVia string `json:"twitter_via_user_name,omitempty"`

	// Language selects the message table: en, fr or ja.
	Language string `json:"language,omitempty"`
}

const (
	SettingsFile = "settings.json"
	CacheDir     = "cache"
	CrossRefFile = "crossref.db"
)

// Default returns the options used when no settings file exists.
func Default() *Options {
	return &Options{
		DefaultCommand: "vancouver",
		AuthorLimit:    6,
		EtAlText:       "et al",
		Language:       "en",
	}
}

// SettingsPath returns the path to settings.json under a data dir.
func SettingsPath(dataDir string) string {
	return filepath.Join(dataDir, SettingsFile)
}

// CachePath returns the raw record cache directory under a data dir.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, CacheDir)
}

// CrossRefPath returns the crossref index file under a data dir.
func CrossRefPath(dataDir string) string {
	return filepath.Join(dataDir, CrossRefFile)
}

// Load reads the options from the data directory. A missing file
// yields the defaults, not an error; settings are optional.
func Load(dataDir string) (*Options, error) {
	data, err := os.ReadFile(SettingsPath(dataDir))
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	opts := Default()
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return opts, nil
}

// Save writes the options to the data directory.
func (o *Options) Save(dataDir string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(SettingsPath(dataDir), data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
