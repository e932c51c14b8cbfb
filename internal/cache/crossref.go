package cache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/medwiki/pubcite/internal/medline"
)

// CrossRef is the PMID to DOI index, kept in a sqlite file next to the
// record store. The cached raw records are the durable data; the index
// can always be rebuilt from them.
type CrossRef struct {
	db *sql.DB
}

const crossRefSchema = `
CREATE TABLE IF NOT EXISTS crossref (
	pmid TEXT PRIMARY KEY,
	doi  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_crossref_doi ON crossref(doi);
`

// OpenCrossRef opens or creates the index at path.
func OpenCrossRef(path string) (*CrossRef, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening crossref index: %w", err)
	}
	// sqlite allows one writer; a single connection avoids lock
	// contention errors under concurrent use.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(crossRefSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating crossref schema: %w", err)
	}
	return &CrossRef{db: db}, nil
}

// Close releases the underlying database.
func (c *CrossRef) Close() error {
	return c.db.Close()
}

// Put records the DOI for a PMID, replacing any previous mapping.
// Empty values are ignored; a record without a DOI adds nothing.
func (c *CrossRef) Put(pmid, doi string) error {
	if pmid == "" || doi == "" {
		return nil
	}
	_, err := c.db.Exec(
		`INSERT INTO crossref (pmid, doi) VALUES (?, ?)
		 ON CONFLICT(pmid) DO UPDATE SET doi = excluded.doi`,
		pmid, doi)
	if err != nil {
		return fmt.Errorf("storing crossref: %w", err)
	}
	return nil
}

// DOI returns the DOI mapped to a PMID, or "" when unknown.
func (c *CrossRef) DOI(pmid string) (string, error) {
	var doi string
	err := c.db.QueryRow(`SELECT doi FROM crossref WHERE pmid = ?`, pmid).Scan(&doi)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up doi: %w", err)
	}
	return doi, nil
}

// PMID returns the PMID mapped to a DOI, or "" when unknown.
func (c *CrossRef) PMID(doi string) (string, error) {
	var pmid string
	err := c.db.QueryRow(`SELECT pmid FROM crossref WHERE doi = ?`, doi).Scan(&pmid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up pmid: %w", err)
	}
	return pmid, nil
}

// All returns every mapping, ordered by PMID.
func (c *CrossRef) All() (map[string]string, error) {
	rows, err := c.db.Query(`SELECT pmid, doi FROM crossref ORDER BY pmid`)
	if err != nil {
		return nil, fmt.Errorf("listing crossrefs: %w", err)
	}
	defer rows.Close()

	refs := make(map[string]string)
	for rows.Next() {
		var pmid, doi string
		if err := rows.Scan(&pmid, &doi); err != nil {
			return nil, fmt.Errorf("scanning crossref: %w", err)
		}
		refs[pmid] = doi
	}
	return refs, rows.Err()
}

// RebuildFrom drops the index and repopulates it by parsing every
// record in the store.
func (c *CrossRef) RebuildFrom(store *Store) error {
	ids, err := store.List()
	if err != nil {
		return err
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM crossref`); err != nil {
		return fmt.Errorf("clearing crossref index: %w", err)
	}
	for _, id := range ids {
		raw, err := store.Get(id)
		if err != nil {
			return err
		}
		rec := medline.Parse(raw)
		if rec.PMID == "" || rec.DOI == "" {
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO crossref (pmid, doi) VALUES (?, ?)
			 ON CONFLICT(pmid) DO UPDATE SET doi = excluded.doi`,
			rec.PMID, rec.DOI); err != nil {
			return fmt.Errorf("rebuilding crossref: %w", err)
		}
	}
	return tx.Commit()
}
