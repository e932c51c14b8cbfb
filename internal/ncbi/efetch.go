package ncbi

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"github.com/medwiki/pubcite/internal/medline"
	"github.com/medwiki/pubcite/internal/normalize"
)

// xmlTagRe strips markup tags left inside innerxml content.
var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// yearRe extracts the first four-digit year from MedlineDate strings.
var yearRe = regexp.MustCompile(`\d{4}`)

// XML structures for the EFetch pubmed response. Titles and abstract
// sections capture innerxml because the feed nests <i>, <sup>, <sub>
// inside them.

type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation   medlineCitation `xml:"MedlineCitation"`
	PubmedData pubmedData      `xml:"PubmedData"`
}

type medlineCitation struct {
	PMID            string             `xml:"PMID"`
	Article         xmlArticle         `xml:"Article"`
	MeshHeadingList xmlMeshHeadingList `xml:"MeshHeadingList"`
	KeywordList     xmlKeywordList     `xml:"KeywordList"`
}

type xmlArticle struct {
	Journal      xmlJournal      `xml:"Journal"`
	ArticleTitle xmlInnerContent `xml:"ArticleTitle"`
	Abstract     xmlAbstract     `xml:"Abstract"`
	AuthorList   xmlAuthorList   `xml:"AuthorList"`
	Language     []string        `xml:"Language"`
	Pagination   xmlPagination   `xml:"Pagination"`
	Types        []string        `xml:"PublicationTypeList>PublicationType"`
}

type xmlJournal struct {
	JournalIssue    xmlJournalIssue `xml:"JournalIssue"`
	Title           string          `xml:"Title"`
	ISOAbbreviation string          `xml:"ISOAbbreviation"`
}

type xmlJournalIssue struct {
	Volume  string     `xml:"Volume"`
	Issue   string     `xml:"Issue"`
	PubDate xmlPubDate `xml:"PubDate"`
}

type xmlPubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type xmlInnerContent struct {
	Inner string `xml:",innerxml"`
}

type xmlAbstract struct {
	Sections []xmlAbstractText `xml:"AbstractText"`
}

type xmlAbstractText struct {
	Label string `xml:"Label,attr"`
	Inner string `xml:",innerxml"`
}

type xmlAuthorList struct {
	Authors []xmlAuthor `xml:"Author"`
}

type xmlAuthor struct {
	LastName       string `xml:"LastName"`
	ForeName       string `xml:"ForeName"`
	Initials       string `xml:"Initials"`
	CollectiveName string `xml:"CollectiveName"`
}

type xmlPagination struct {
	MedlinePgn string `xml:"MedlinePgn"`
}

type xmlMeshHeadingList struct {
	Headings []xmlMeshHeading `xml:"MeshHeading"`
}

type xmlMeshHeading struct {
	Descriptor string `xml:"DescriptorName"`
}

type xmlKeywordList struct {
	Keywords []string `xml:"Keyword"`
}

type pubmedData struct {
	ArticleIDs []xmlArticleID `xml:"ArticleIdList>ArticleId"`
}

type xmlArticleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}

// ParseSummaryXML converts an EFetch XML summary into the same Record
// the MEDLINE parser produces. Input without any article yields a
// record without a PMID, mirroring the MEDLINE parser's "not found"
// convention.
func ParseSummaryXML(data []byte) (*medline.Record, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(set.Articles) == 0 {
		return &medline.Record{}, nil
	}

	a := set.Articles[0]
	rec := &medline.Record{
		PMID:         a.Citation.PMID,
		Title:        stripTags(a.Citation.Article.ArticleTitle.Inner),
		JournalISO:   a.Citation.Article.Journal.ISOAbbreviation,
		JournalTitle: a.Citation.Article.Journal.Title,
		Volume:       a.Citation.Article.Journal.JournalIssue.Volume,
		Issue:        a.Citation.Article.Journal.JournalIssue.Issue,
		Pages:        a.Citation.Article.Pagination.MedlinePgn,
		Types:        a.Citation.Article.Types,
	}
	if len(a.Citation.Article.Language) > 0 {
		rec.Language = a.Citation.Article.Language[0]
	}

	applyPubDate(rec, a.Citation.Article.Journal.JournalIssue.PubDate)

	for _, au := range a.Citation.Article.AuthorList.Authors {
		if au.CollectiveName != "" {
			rec.CorporateAuthor = au.CollectiveName
			continue
		}
		rec.Authors = append(rec.Authors, authorDisplay(au))
	}

	rec.Abstract = joinAbstract(a.Citation.Article.Abstract.Sections)

	for _, mh := range a.Citation.MeshHeadingList.Headings {
		if mh.Descriptor != "" {
			rec.Mesh = append(rec.Mesh, mh.Descriptor)
		}
	}
	rec.Keywords = append(rec.Keywords, a.Citation.KeywordList.Keywords...)

	for _, id := range a.PubmedData.ArticleIDs {
		switch id.IDType {
		case "doi":
			rec.DOI = strings.TrimSpace(id.Value)
		case "pmc":
			rec.PMCID = strings.TrimSpace(id.Value)
		case "pii":
			rec.PII = strings.TrimSpace(id.Value)
		}
	}

	return rec, nil
}

func applyPubDate(rec *medline.Record, pd xmlPubDate) {
	rec.Year = pd.Year
	rec.Month = pd.Month
	rec.Day = pd.Day
	if rec.Year == "" && pd.MedlineDate != "" {
		rec.Year = yearRe.FindString(pd.MedlineDate)
	}
}

func authorDisplay(au xmlAuthor) string {
	initials := au.Initials
	if initials == "" {
		initials = normalize.Initials(au.ForeName)
	}
	if initials == "" {
		return normalize.NameCase(au.LastName)
	}
	return normalize.NameCase(au.LastName) + " " + initials
}

// joinAbstract concatenates labeled abstract sections, prefixing each
// label the way the MEDLINE feed formats structured abstracts.
func joinAbstract(sections []xmlAbstractText) string {
	var parts []string
	for _, s := range sections {
		text := strings.TrimSpace(stripTags(s.Inner))
		if text == "" {
			continue
		}
		if s.Label != "" {
			text = capitalizeLabel(s.Label) + ": " + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// capitalizeLabel turns the feed's all-caps section labels into the
// "Methods" form the abstract normalizer recognizes.
func capitalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return label
	}
	lower := strings.ToLower(label)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func stripTags(s string) string {
	return xmlTagRe.ReplaceAllString(s, "")
}
