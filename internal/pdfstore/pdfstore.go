// Package pdfstore manages locally stored article PDFs, filed either
// by PMID or by DOI.
package pdfstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store holds two directories under one root: pmid_pdf/ for files
// named <pmid>.pdf and doi_pdf/ for files named after the DOI with
// every '/' replaced by '_'.
type Store struct {
	root string
}

// New creates the store rooted at dir, creating both subdirectories
// when missing.
func New(root string) (*Store, error) {
	s := &Store{root: root}
	for _, dir := range []string{s.pmidDir(), s.doiDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating pdf dir: %w", err)
		}
	}
	return s, nil
}

func (s *Store) pmidDir() string { return filepath.Join(s.root, "pmid_pdf") }
func (s *Store) doiDir() string  { return filepath.Join(s.root, "doi_pdf") }

// doiFileName flattens a DOI into a single path element.
func doiFileName(doi string) string {
	return strings.ReplaceAll(doi, "/", "_") + ".pdf"
}

// LocalPath returns the path of a stored PDF for the article, trying
// the PMID file first and the DOI file second. Empty means no PDF.
func (s *Store) LocalPath(pmid, doi string) string {
	if pmid != "" {
		p := filepath.Join(s.pmidDir(), pmid+".pdf")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if doi != "" {
		p := filepath.Join(s.doiDir(), doiFileName(doi))
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// PutPMID stores a PDF under the article's PMID.
func (s *Store) PutPMID(pmid string, r io.Reader) error {
	return s.write(filepath.Join(s.pmidDir(), pmid+".pdf"), r)
}

// PutDOI stores a PDF under the article's DOI.
func (s *Store) PutDOI(doi string, r io.Reader) error {
	return s.write(filepath.Join(s.doiDir(), doiFileName(doi)), r)
}

func (s *Store) write(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating pdf file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("writing pdf file: %w", err)
	}
	return f.Close()
}

// PMIDs returns the PMIDs that have a stored PDF, sorted.
func (s *Store) PMIDs() ([]string, error) {
	return listIDs(s.pmidDir(), func(name string) string { return name })
}

// DOIs returns the DOIs that have a stored PDF, sorted. The first '_'
// is turned back into the '/' separating the DOI prefix from the
// suffix; later underscores are ambiguous and stay as stored.
func (s *Store) DOIs() ([]string, error) {
	return listIDs(s.doiDir(), func(name string) string {
		if prefix, suffix, ok := strings.Cut(name, "_"); ok {
			return prefix + "/" + suffix
		}
		return name
	})
}

func listIDs(dir string, decode func(string) string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing pdf dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdf") {
			continue
		}
		ids = append(ids, decode(strings.TrimSuffix(e.Name(), ".pdf")))
	}
	sort.Strings(ids)
	return ids, nil
}
