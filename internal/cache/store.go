// Package cache stores raw MEDLINE records on disk and keeps the
// PMID to DOI cross-reference index alongside them.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store is a flat directory of raw record files, one per identifier.
// File names are "<prefix>_<id>.<ext>", lowercased, so the layout is
// portable across case-insensitive filesystems.
type Store struct {
	dir    string
	prefix string
	ext    string
}

// NewStore creates the store rooted at dir, creating the directory
// when missing.
func NewStore(dir string) (*Store, error) {
	s := &Store{dir: dir, prefix: "pmid", ext: "txt"}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return s, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file path backing an identifier.
func (s *Store) Path(id string) string {
	name := strings.ToLower(s.prefix + "_" + id + "." + s.ext)
	return filepath.Join(s.dir, name)
}

// translatedPath is the sidecar holding a stored abstract translation.
func (s *Store) translatedPath(id, lang string) string {
	name := strings.ToLower(s.prefix + "_" + id + "_" + lang + "." + s.ext)
	return filepath.Join(s.dir, name)
}

// Get returns the cached raw record, or "" when the identifier is not
// cached.
func (s *Store) Get(id string) (string, error) {
	data, err := os.ReadFile(s.Path(id))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading cached record: %w", err)
	}
	return string(data), nil
}

// Put writes the raw record for an identifier, replacing any previous
// content.
func (s *Store) Put(id, raw string) error {
	if err := os.WriteFile(s.Path(id), []byte(raw), 0o644); err != nil {
		return fmt.Errorf("caching record: %w", err)
	}
	return nil
}

// Exists reports whether an identifier is cached.
func (s *Store) Exists(id string) bool {
	_, err := os.Stat(s.Path(id))
	return err == nil
}

// TranslatedAbstract returns the stored French abstract translation
// for a PMID, or "" when none was saved.
func (s *Store) TranslatedAbstract(pmid string) string {
	data, err := os.ReadFile(s.translatedPath(pmid, "fr"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// PutTranslatedAbstract stores a French abstract translation sidecar.
func (s *Store) PutTranslatedAbstract(pmid, text string) error {
	if err := os.WriteFile(s.translatedPath(pmid, "fr"), []byte(text), 0o644); err != nil {
		return fmt.Errorf("saving translated abstract: %w", err)
	}
	return nil
}

// List returns the cached identifiers in ascending order. Translation
// sidecars are not identifiers and are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing cache: %w", err)
	}
	want := strings.ToLower(s.prefix) + "_"
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, want) || !strings.HasSuffix(name, "."+s.ext) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, want), "."+s.ext)
		if strings.Contains(id, "_") {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Clear deletes every cached record file but keeps the directory.
func (s *Store) Clear() error {
	ids, err := s.List()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := os.Remove(s.Path(id)); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}
	return nil
}

// RemoveDir deletes the whole store directory, sidecars included.
func (s *Store) RemoveDir() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("removing cache dir: %w", err)
	}
	return nil
}
