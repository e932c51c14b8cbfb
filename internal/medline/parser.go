package medline

import (
	"strings"

	"github.com/medwiki/pubcite/internal/normalize"
)

// valueOffset is where a field value starts on a tag line, matching
// the fixed-width "TAG - value" convention of the format.
const valueOffset = 6

// occurrence is a single tag occurrence in feed order. Repeated tags
// keep one occurrence each; order is preserved.
type occurrence struct {
	tag string
	val string
}

// Parse converts a raw record blob into a Record. Empty or garbage
// input yields a record without a PMID; callers treat that as "not
// found", never as an error.
func Parse(raw string) *Record {
	rec := &Record{}
	var abbreviated []string
	for _, o := range scan(raw) {
		if o.tag == "AU" {
			abbreviated = append(abbreviated, o.val)
			continue
		}
		apply(rec, o.tag, o.val)
	}
	// AU carries the already-abbreviated "Last FM" form; it only fills
	// in when the record has no FAU lines.
	if len(rec.Authors) == 0 {
		rec.Authors = abbreviated
	}
	return rec
}

// scan splits the blob into tag occurrences. A line starting with at
// least two spaces continues the previous value, appended with a
// single space. A line longer than four characters starts a new
// field: the tag is the trimmed first four characters, the value the
// trimmed remainder from the fixed offset.
func scan(raw string) []occurrence {
	var occs []occurrence
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "  ") {
			if len(occs) == 0 {
				continue
			}
			occs[len(occs)-1].val += " " + strings.TrimSpace(line)
			continue
		}
		if len(line) > 4 {
			tag := strings.TrimSpace(line[:4])
			val := ""
			if len(line) > valueOffset {
				val = strings.TrimSpace(line[valueOffset:])
			}
			occs = append(occs, occurrence{tag: tag, val: val})
		}
	}
	return occs
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(raw, "\n")
}

// apply dispatches one tag occurrence onto the record. Scalar tags
// overwrite on repeat; list tags accumulate. Unrecognized tags are
// silently ignored so new feed tags do not break parsing.
// Tag meanings per https://www.nlm.nih.gov/bsd/mms/medlineelements.html
func apply(rec *Record, tag, val string) {
	switch tag {
	case "PMID":
		rec.PMID = val
	case "PMC":
		rec.PMCID = val
	case "VI":
		rec.Volume = val
	case "IP":
		rec.Issue = val
	case "DP":
		applyDate(rec, val)
	case "TI":
		rec.Title = val
	case "PG":
		rec.Pages = strings.TrimSuffix(val, "-")
	case "AB":
		rec.Abstract = val
	case "FAU":
		rec.Authors = append(rec.Authors, normalize.AuthorName(val))
	case "LA":
		rec.Language = val
	case "PT":
		rec.Types = append(rec.Types, val)
	case "TT":
		rec.TranslatedTitle = val
	case "PL":
		rec.Country = val
	case "TA":
		rec.JournalISO = val
	case "JT":
		rec.JournalTitle = val
	case "JID":
		rec.JournalID = val
	case "MH":
		rec.Mesh = append(rec.Mesh, val)
	case "OT":
		rec.Keywords = append(rec.Keywords, val)
	case "AID":
		applyArticleID(rec, val)
	case "SO":
		rec.SO = fixSummaryTail(val)
	case "CI":
		rec.Copyright = val
	case "CN":
		rec.CorporateAuthor = val
	case "CTI":
		rec.CollectionTitle = val
	case "BTI":
		rec.Kind = BookRecord
		rec.BookTitle = val
		if rec.Title == "" {
			rec.Title = val
		}
	case "PB":
		rec.Publisher = val
	case "LID":
		applyLocationID(rec, val)
	case "HASH":
		rec.Hashtags = val
	}
}

// applyDate splits a DP value like "2005 Apr 15": the year is the
// first four characters, the rest is month then day.
func applyDate(rec *Record, val string) {
	if len(val) < 4 {
		rec.Year = val
		return
	}
	rec.Year = val[:4]
	rest := strings.Fields(val[4:])
	if len(rest) > 0 {
		rec.Month = rest[0]
	}
	if len(rest) > 1 {
		rec.Day = rest[1]
	}
}

// applyArticleID dispatches an AID value by its bracketed suffix.
func applyArticleID(rec *Record, val string) {
	if v, ok := strings.CutSuffix(val, " [doi]"); ok {
		rec.DOI = v
		return
	}
	if v, ok := strings.CutSuffix(val, " [pii]"); ok {
		rec.PII = v
		return
	}
	if v, ok := strings.CutSuffix(val, " [bookaccession]"); ok {
		rec.BookAccession = v
	}
}

// applyLocationID handles the overloaded LID tag: a bracketed suffix
// marks a doi or pii, anything else is pagination.
func applyLocationID(rec *Record, val string) {
	if v, ok := strings.CutSuffix(val, " [doi]"); ok {
		rec.DOI = v
		return
	}
	if v, ok := strings.CutSuffix(val, " [pii]"); ok {
		rec.PII = v
		return
	}
	rec.Pages = val
}

// fixSummaryTail rewrites the trailing "-." some SO values carry to a
// plain ".". Known data defect in the feed.
func fixSummaryTail(val string) string {
	if strings.HasSuffix(val, "-.") {
		return val[:len(val)-2] + "."
	}
	return val
}
