package ncbi

import (
	"fmt"
	"net/url"
)

// Outbound link templates. The render layer builds every user-facing
// link through these helpers so the URL scheme lives in one place.
const (
	articleURLTpl    = "https://pubmed.ncbi.nlm.nih.gov/%s"
	searchURLTpl     = "https://pubmed.ncbi.nlm.nih.gov/?term=%s"
	doiURLTpl        = "https://doi.org/%s"
	pmcPDFURLTpl     = "https://www.ncbi.nlm.nih.gov/pmc/articles/%s/pdf"
	similarURLTpl    = "https://pubmed.ncbi.nlm.nih.gov/?linkname=pubmed_pubmed&from_uid=%s"
	citedByURLTpl    = "https://pubmed.ncbi.nlm.nih.gov/?linkname=pubmed_pubmed_citedin&from_uid=%s"
	referencesURLTpl = "https://pubmed.ncbi.nlm.nih.gov/?linkname=pubmed_pubmed_refs&from_uid=%s"
	sciHubURLTpl     = "https://sci-hub.se/%s"
	twitterURLTpl    = "https://twitter.com/intent/tweet?%s"
)

// ArticleURL returns the PubMed page for a PMID.
func ArticleURL(pmid string) string {
	return fmt.Sprintf(articleURLTpl, url.QueryEscape(pmid))
}

// SearchURL returns a PubMed query URL for free search terms.
func SearchURL(terms string) string {
	return fmt.Sprintf(searchURLTpl, url.QueryEscape(terms))
}

// DOIURL returns the resolver link for a DOI.
func DOIURL(doi string) string {
	return fmt.Sprintf(doiURLTpl, doi)
}

// PMCPDFURL returns the PubMed Central full-text PDF link.
func PMCPDFURL(pmcid string) string {
	return fmt.Sprintf(pmcPDFURLTpl, url.QueryEscape(pmcid))
}

// SimilarURL returns the "similar articles" listing for a PMID.
func SimilarURL(pmid string) string {
	return fmt.Sprintf(similarURLTpl, url.QueryEscape(pmid))
}

// CitedByURL returns the "cited by" listing for a PMID.
func CitedByURL(pmid string) string {
	return fmt.Sprintf(citedByURLTpl, url.QueryEscape(pmid))
}

// ReferencesURL returns the outbound references listing for a PMID.
func ReferencesURL(pmid string) string {
	return fmt.Sprintf(referencesURLTpl, url.QueryEscape(pmid))
}

// SciHubURL returns the sci-hub mirror link for a DOI.
func SciHubURL(doi string) string {
	return fmt.Sprintf(sciHubURLTpl, url.QueryEscape(doi))
}

// TwitterIntentURL returns a tweet intent link for a prebuilt query
// string.
func TwitterIntentURL(query string) string {
	return fmt.Sprintf(twitterURLTpl, query)
}
