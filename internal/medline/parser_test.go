package medline

import (
	"reflect"
	"testing"
)

const articleFixture = `PMID- 15924077
OWN - NLM
STAT- MEDLINE
DP  - 2005 Apr 15
TI  - Drug treatment in Huntington's disease.
PG  - 419-426
AB  - Huntington's disease is a neurodegenerative disorder. Treatment
      remains symptomatic.
FAU - Bonelli, Raphael M
FAU - WENNING, Gregor K
LA  - eng
PT  - Journal Article
PT  - Review
PL  - Spain
TA  - Drugs Today (Barc)
JT  - Drugs of today (Barcelona, Spain : 1998)
JID - 9891268
VI  - 41
IP  - 4
MH  - Humans
MH  - Huntington Disease/drug therapy
OT  - chorea
AID - 10.1358/dot.2005.41.6.893610 [doi]
AID - 893610 [pii]
SO  - Drugs Today (Barc). 2005 Apr;41(4):419-26-.
`

func TestParseArticle(t *testing.T) {
	rec := Parse(articleFixture)

	if rec.Kind != ArticleRecord {
		t.Errorf("Kind = %v, want ArticleRecord", rec.Kind)
	}
	if rec.PMID != "15924077" {
		t.Errorf("PMID = %q, want 15924077", rec.PMID)
	}
	if rec.Year != "2005" || rec.Month != "Apr" || rec.Day != "15" {
		t.Errorf("date = %q %q %q, want 2005 Apr 15", rec.Year, rec.Month, rec.Day)
	}
	if rec.Title != "Drug treatment in Huntington's disease." {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Pages != "419-426" {
		t.Errorf("Pages = %q, want 419-426", rec.Pages)
	}
	if rec.Volume != "41" || rec.Issue != "4" {
		t.Errorf("Volume/Issue = %q/%q, want 41/4", rec.Volume, rec.Issue)
	}
	if rec.JournalISO != "Drugs Today (Barc)" {
		t.Errorf("JournalISO = %q", rec.JournalISO)
	}
	if rec.DOI != "10.1358/dot.2005.41.6.893610" {
		t.Errorf("DOI = %q", rec.DOI)
	}
	if rec.PII != "893610" {
		t.Errorf("PII = %q", rec.PII)
	}
	wantAuthors := []string{"Bonelli RM", "Wenning GK"}
	if !reflect.DeepEqual(rec.Authors, wantAuthors) {
		t.Errorf("Authors = %v, want %v", rec.Authors, wantAuthors)
	}
	if len(rec.Mesh) != 2 || rec.Mesh[1] != "Huntington Disease/drug therapy" {
		t.Errorf("Mesh = %v", rec.Mesh)
	}
	if len(rec.Types) != 2 {
		t.Errorf("Types = %v, want two entries in order", rec.Types)
	}
}

func TestParseContinuationLines(t *testing.T) {
	rec := Parse(articleFixture)
	want := "Huntington's disease is a neurodegenerative disorder. Treatment remains symptomatic."
	if rec.Abstract != want {
		t.Errorf("Abstract = %q, want %q", rec.Abstract, want)
	}
}

func TestParseSummaryTailFixed(t *testing.T) {
	rec := Parse(articleFixture)
	want := "Drugs Today (Barc). 2005 Apr;41(4):419-26."
	if rec.SO != want {
		t.Errorf("SO = %q, want %q", rec.SO, want)
	}
}

func TestParseTrailingPageHyphen(t *testing.T) {
	rec := Parse("PMID- 123456\nPG  - 419-\n")
	if rec.Pages != "419" {
		t.Errorf("Pages = %q, want 419", rec.Pages)
	}
}

func TestParseBook(t *testing.T) {
	raw := `PMID- 30000000
BTI - Clinical Methods
CTI - The History, Physical, and Laboratory Examinations
PB  - Butterworths
PL  - Boston
DP  - 1990
AID - NBK201 [bookaccession]
FAU - Walker, H Kenneth
`
	rec := Parse(raw)
	if rec.Kind != BookRecord {
		t.Fatalf("Kind = %v, want BookRecord", rec.Kind)
	}
	if rec.BookTitle != "Clinical Methods" {
		t.Errorf("BookTitle = %q", rec.BookTitle)
	}
	if rec.Title != "Clinical Methods" {
		t.Errorf("Title fallback = %q, want book title", rec.Title)
	}
	if rec.Publisher != "Butterworths" || rec.Country != "Boston" {
		t.Errorf("imprint = %q/%q", rec.Publisher, rec.Country)
	}
	if rec.BookAccession != "NBK201" {
		t.Errorf("BookAccession = %q", rec.BookAccession)
	}
}

func TestParseBookTitleDoesNotOverrideArticleTitle(t *testing.T) {
	rec := Parse("PMID- 123456\nTI  - A chapter title.\nBTI - The whole book\n")
	if rec.Title != "A chapter title." {
		t.Errorf("Title = %q, want the TI value kept", rec.Title)
	}
	if rec.BookTitle != "The whole book" {
		t.Errorf("BookTitle = %q", rec.BookTitle)
	}
}

func TestParseLID(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want func(*Record) bool
	}{
		{"doi", "LID - 10.1000/xyz [doi]\n", func(r *Record) bool { return r.DOI == "10.1000/xyz" }},
		{"pii", "LID - S0140-6736 [pii]\n", func(r *Record) bool { return r.PII == "S0140-6736" }},
		{"pages", "LID - e0123\n", func(r *Record) bool { return r.Pages == "e0123" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Parse(tc.raw)
			if !tc.want(rec) {
				t.Errorf("record = %+v", rec)
			}
		})
	}
}

func TestParseAbbreviatedAuthorsFallback(t *testing.T) {
	rec := Parse("PMID- 123456\nAU  - Bonelli RM\nAU  - Wenning GK\n")
	want := []string{"Bonelli RM", "Wenning GK"}
	if !reflect.DeepEqual(rec.Authors, want) {
		t.Errorf("Authors = %v, want %v", rec.Authors, want)
	}
}

func TestParseFullAuthorsWinOverAbbreviated(t *testing.T) {
	rec := Parse("PMID- 123456\nFAU - Bonelli, Raphael M\nAU  - Bonelli RM\n")
	want := []string{"Bonelli RM"}
	if !reflect.DeepEqual(rec.Authors, want) {
		t.Errorf("Authors = %v, want FAU only, no duplicate", rec.Authors)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "garbage", "AB\n"} {
		rec := Parse(raw)
		if rec.HasPMID() {
			t.Errorf("Parse(%q) has PMID %q, want none", raw, rec.PMID)
		}
	}
}

func TestParseIdempotentOnRepeatedScalars(t *testing.T) {
	rec := Parse("PMID- 111111\nVI  - 1\nVI  - 2\n")
	if rec.Volume != "2" {
		t.Errorf("Volume = %q, want last occurrence to win", rec.Volume)
	}
}

func TestParseCRLF(t *testing.T) {
	rec := Parse("PMID- 123456\r\nTI  - Title.\r\n")
	if rec.PMID != "123456" || rec.Title != "Title." {
		t.Errorf("CRLF parse = %+v", rec)
	}
}

func TestParseHashtags(t *testing.T) {
	rec := Parse("PMID- 123456\nHASH- neuro, movement-disorders\n")
	if rec.Hashtags != "neuro, movement-disorders" {
		t.Errorf("Hashtags = %q", rec.Hashtags)
	}
}
