// Package citation derives citation-style strings from a parsed
// record: Vancouver, ISO, NPG and GPNV house styles.
package citation

import (
	"strings"

	"github.com/medwiki/pubcite/internal/lang"
	"github.com/medwiki/pubcite/internal/medline"
	"github.com/medwiki/pubcite/internal/normalize"
)

// Options carries the configuration the composer needs. It is passed
// in explicitly; there are no ambient lookups.
type Options struct {
	// AuthorLimit caps the Vancouver author list. Zero or negative
	// means no limit.
	AuthorLimit      int
	EtAlText         string
	StripJournalDots bool
	Messages         lang.Table
}

// Fields is the composed, render-ready view of one record. Composing
// the same record with the same options always yields the same
// Fields.
type Fields struct {
	Rec *medline.Record

	Authors          string // full list, corporate author included
	AuthorsVancouver string // limit-truncated list
	AuthorsLimit3    string // first three authors
	FirstAuthor      string // first author plus et-al marker

	JournalISO string // abbreviation, dots stripped when configured

	ISO       string
	Vancouver string
	NPGISO    string
	NPGFull   string
	GPNVFull  string
}

// Compose derives all citation strings from a record.
func Compose(rec *medline.Record, opts Options) *Fields {
	f := &Fields{Rec: rec}

	authors := make([]string, 0, len(rec.Authors)+1)
	authors = append(authors, rec.Authors...)
	if rec.CorporateAuthor != "" {
		authors = append(authors, rec.CorporateAuthor)
	}

	display := authors
	if len(display) == 0 {
		display = []string{opts.Messages.Msg("no_author_listed")}
	}
	f.Authors = strings.Join(display, ", ")
	f.FirstAuthor = display[0]
	if len(display) > 1 {
		f.FirstAuthor += " " + etAlOrDefault(opts)
	}
	f.AuthorsLimit3 = TruncateAuthors(authors, 3, etAlOrDefault(opts))
	f.AuthorsVancouver = TruncateAuthors(authors, opts.AuthorLimit, etAlOrDefault(opts))

	f.JournalISO = rec.JournalISO
	if opts.StripJournalDots {
		f.JournalISO = strings.ReplaceAll(f.JournalISO, ".", "")
	}

	if rec.Kind == medline.BookRecord {
		composeBook(f, rec)
	} else {
		composeArticle(f, rec, opts)
	}
	return f
}

func etAlOrDefault(opts Options) string {
	if opts.EtAlText != "" {
		return opts.EtAlText
	}
	return "et al"
}

// composeBook builds "{authors}. <title>. <country> : <publisher>,
// <year>." as both the Vancouver and full house-style citations.
func composeBook(f *Fields, rec *medline.Record) {
	imprint := squeeze(rec.Country + " : " + rec.Publisher + ", " + rec.Year + ".")
	f.ISO = imprint
	f.Vancouver = clauses(f.AuthorsVancouver, "<i>"+rec.BookTitle+"</i>", imprint)
	f.NPGFull = f.Vancouver
	f.GPNVFull = f.Vancouver
}

func composeArticle(f *Fields, rec *medline.Record, opts Options) {
	// The feed's own SO summary is trusted as the ISO citation; parts
	// are only assembled when the feed did not send one.
	f.ISO = rec.SO
	if f.ISO == "" {
		f.ISO = assembleISO(f.JournalISO, rec)
	}

	f.Vancouver = clauses(f.AuthorsVancouver, rec.Title) + " " + f.ISO
	f.Vancouver = squeeze(f.Vancouver)

	titleFull := rec.TranslatedTitle
	if titleFull == "" {
		titleFull = rec.Title
	}
	titleFull = normalize.TitleCase(titleFull)

	f.NPGISO = npgISO(f.JournalISO, rec)
	f.NPGFull = clauses(f.AuthorsLimit3, titleFull, f.NPGISO)
	f.GPNVFull = clauses(f.AuthorsLimit3, titleFull, gpnvISO(rec))
}

// assembleISO rebuilds "Journal Year Month;vol(issue):pages" when the
// feed sent no SO summary.
func assembleISO(journalISO string, rec *medline.Record) string {
	if journalISO == "" && rec.Year == "" && rec.Volume == "" && rec.Pages == "" {
		return ""
	}
	date := squeeze(rec.Year + " " + rec.Month + " " + rec.Day)
	s := journalISO + " " + date + ";" + rec.Volume
	if rec.Issue != "" {
		s += "(" + rec.Issue + ")"
	}
	s += ":" + rec.Pages
	return squeeze(s)
}

// npgISO builds the NPG journal clause. Missing pages fall back to
// the DOI; everything else degrades to whatever is available.
func npgISO(journalISO string, rec *medline.Record) string {
	if journalISO == "" && rec.Year == "" && rec.Volume == "" && rec.Pages == "" && rec.DOI == "" {
		return ""
	}
	pages := normalize.CompressPageRange(rec.Pages)
	s := journalISO + " " + rec.Year + ";" + rec.Volume
	if rec.Issue != "" {
		s += "(" + rec.Issue + ")"
	}
	switch {
	case pages != "":
		s += ":" + pages + "."
	case rec.DOI != "":
		s += ", doi : " + rec.DOI + "."
	default:
		s += "."
	}
	return squeeze(s)
}

// gpnvISO is the GPNV variant of the journal clause. The spacing and
// ordering rules differ enough from NPG that the two stay separate
// derivations: French typographic spaces before ':' and ';', and the
// abbreviation never keeps its dots.
func gpnvISO(rec *medline.Record) string {
	if rec.JournalISO == "" && rec.Year == "" && rec.Volume == "" && rec.Pages == "" && rec.DOI == "" {
		return ""
	}
	pages := normalize.CompressPageRange(rec.Pages)
	s := strings.ReplaceAll(rec.JournalISO, ".", "") + " " + rec.Year + " ; " + rec.Volume
	if rec.Issue != "" {
		s += "(" + rec.Issue + ")"
	}
	switch {
	case pages != "":
		s += " : " + pages + "."
	case rec.DOI != "":
		s += " ; doi : " + rec.DOI + "."
	default:
		s += "."
	}
	return squeeze(s)
}

// clauses joins non-empty parts with ". " and closes with a period.
func clauses(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, strings.TrimSuffix(p, "."))
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// squeeze collapses runs of spaces left by empty fields and trims the
// ends.
func squeeze(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
