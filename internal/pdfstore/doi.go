package pdfstore

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// scanPages is how deep HarvestDOI looks; the DOI of a published
// article sits on the first page in practice.
const scanPages = 3

// HarvestDOI reads the opening pages of a PDF and returns the first
// DOI found, or "" when the file carries none. A DOI-less PDF is not
// an error; those files are filed by PMID instead.
func HarvestDOI(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > scanPages {
		pages = scanPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := findDOI(text); doi != "" {
			return doi, nil
		}
	}
	return "", nil
}

func findDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if plausibleDOI(match) {
			return match
		}
	}
	return ""
}

// plausibleDOI filters out pattern matches too short or malformed to
// resolve.
func plausibleDOI(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash > 0 && slash < len(doi)-1
}
