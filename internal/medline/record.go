// Package medline parses the line-tag record format served by the
// NCBI literature citation exporter (NBIB) into a normalized record.
package medline

// Kind discriminates the two record shapes the parser can produce.
// The shape is decided once, during parsing, by the presence of a
// book-title tag.
type Kind int

const (
	ArticleRecord Kind = iota
	BookRecord
)

// Record is the normalized field set of one bibliographic entry.
// Absent fields stay zero-valued; every consumer must tolerate that.
type Record struct {
	Kind Kind

	// Identifiers
	PMID          string
	PMCID         string
	DOI           string
	PII           string
	BookAccession string

	// Titles
	Title           string
	TranslatedTitle string

	// Journal fields (article records only)
	JournalISO   string
	JournalTitle string
	JournalID    string
	Volume       string
	Issue        string
	Pages        string
	SO           string // citation summary as formatted by the feed

	// Publication date
	Year  string
	Month string
	Day   string

	// Book fields (book records only)
	BookTitle       string
	CollectionTitle string
	Publisher       string
	Country         string

	// Content
	Abstract  string
	Copyright string
	Language  string
	Types     []string

	// People
	Authors         []string
	CorporateAuthor string

	// Subject terms
	Mesh     []string
	Keywords []string

	// Free-form hashtags appended by the addhash command, not part of
	// the original feed.
	Hashtags string
}

// HasPMID reports whether the record identifies an article. A record
// without a PMID is treated as "not found" by callers, never as an
// error.
func (r *Record) HasPMID() bool {
	return r.PMID != ""
}
