package render

import (
	"strings"

	"github.com/medwiki/pubcite/internal/citation"
	"github.com/medwiki/pubcite/internal/lang"
	"github.com/medwiki/pubcite/internal/ncbi"
	"github.com/medwiki/pubcite/internal/normalize"
)

// PDFLocator resolves a locally stored PDF for an article. A nil
// locator or an empty path means no PDF.
type PDFLocator interface {
	LocalPath(pmid, doi string) string
}

// TranslatedAbstracts serves manually stored abstract translations.
type TranslatedAbstracts interface {
	TranslatedAbstract(pmid string) string
}

// Options configures a Renderer.
type Options struct {
	Messages   lang.Table
	TwitterVia string // via= account for tweet intents, without '@'
	PageURL    string // URL of the embedding page, for page tweets
}

// Renderer substitutes citation fields into output templates.
type Renderer struct {
	opts      Options
	pdfs      PDFLocator
	abstracts TranslatedAbstracts
}

// New creates a Renderer. pdfs and abstracts may be nil.
func New(opts Options, pdfs PDFLocator, abstracts TranslatedAbstracts) *Renderer {
	return &Renderer{opts: opts, pdfs: pdfs, abstracts: abstracts}
}

// Command renders the named builtin template. Unknown commands fall
// back to long_abstract, matching the behavior readers rely on when a
// template name is mistyped in a page.
func (r *Renderer) Command(cmd string, f *citation.Fields) string {
	tpl, ok := Templates[cmd]
	if !ok {
		tpl = Templates["long_abstract"]
	}
	return r.Render(tpl, f)
}

// Render substitutes every known token in tpl from f. Unknown tokens
// stay as written. The trailing period of a citation span absorbs a
// following literal period.
func (r *Renderer) Render(tpl string, f *citation.Fields) string {
	segs := parseTemplate(tpl, knownToken)

	var out strings.Builder
	for _, s := range segs {
		if s.kind == literalSegment {
			out.WriteString(s.text)
			continue
		}
		out.WriteString(r.resolve(s.text, f))
	}
	return strings.ReplaceAll(out.String(), ".</span>.", ".</span>")
}

func (r *Renderer) resolve(name string, f *citation.Fields) string {
	rec := f.Rec
	switch name {
	case "authors":
		return span("authors", f.Authors)
	case "authors_limit_3":
		return span("authors", f.AuthorsLimit3)
	case "first_author":
		return span("authors", f.FirstAuthor)
	case "collectif":
		return span("authors", rec.CorporateAuthor)
	case "title":
		return span("title", rec.Title)
	case "title_tt":
		if rec.TranslatedTitle != "" {
			return span("title", rec.TranslatedTitle)
		}
		return span("title", rec.Title)
	case "type":
		return span("type", strings.Join(rec.Types, ", "))
	case "lang":
		return span("lang", rec.Language)
	case "iso":
		return span("iso", f.ISO)
	case "vancouver":
		return span("vancouver", f.Vancouver)
	case "npg_iso":
		return span("iso", f.NPGISO)
	case "npg_full":
		return span("npg", f.NPGFull)
	case "gpnv_full":
		return span("gpnv", f.GPNVFull)
	case "journal_iso":
		return span("journal_iso", f.JournalISO)
	case "journal_title":
		return span("journal_title", rec.JournalTitle)
	case "vol":
		return span("vol", rec.Volume)
	case "issue":
		return span("issue", rec.Issue)
	case "pages":
		return span("pages", rec.Pages)
	case "year":
		return span("year", rec.Year)
	case "month":
		return span("month", rec.Month)
	case "doi":
		if rec.DOI == "" {
			return ""
		}
		return span("doi", rec.DOI)
	case "pmid":
		if rec.PMID == "" {
			return ""
		}
		return anchor(ncbi.ArticleURL(rec.PMID), "pmid", "PMID: "+rec.PMID, "PMID: "+rec.PMID)
	case "pmcid":
		if rec.PMCID == "" {
			return ""
		}
		return anchor(ncbi.PMCPDFURL(rec.PMCID), "pmcid", "PMCID: "+rec.PMCID, "PMCID: "+rec.PMCID)
	case "pmid_url":
		if rec.PMID == "" {
			return ""
		}
		return ncbi.ArticleURL(rec.PMID)
	case "pmcid_url":
		if rec.PMCID == "" {
			return ""
		}
		return ncbi.PMCPDFURL(rec.PMCID)
	case "doi_url":
		if rec.DOI == "" {
			return ""
		}
		return ncbi.DOIURL(rec.DOI)
	case "journal_url":
		if rec.DOI == "" {
			return ""
		}
		return anchor(ncbi.DOIURL(rec.DOI), "journal_url", f.ISO, "")
	case "pmc_url":
		if rec.PMCID == "" {
			return ""
		}
		return anchor(ncbi.PMCPDFURL(rec.PMCID), "pmc_url", rec.PMCID, "")
	case "abstract":
		return "<br/>" + span("abstract", r.abstractText(f, normalize.AbstractHTML))
	case "abstract_html":
		return r.abstractText(f, normalize.AbstractHTML)
	case "abstract_wiki":
		return r.abstractText(f, normalize.AbstractWiki)
	case "abstract_fr":
		return r.translatedAbstract(f)
	case "mesh":
		return span("mesh", strings.Join(rec.Mesh, ", "))
	case "keywords":
		return span("keywords", strings.Join(rec.Keywords, ", "))
	case "hashtags":
		return span("hashtags", rec.Hashtags)
	case "localpdf":
		return r.localPDF(rec.PMID, rec.DOI)
	case "tweet":
		return r.tweetBlock(f)
	case "listgroup":
		return r.listGroup(f)
	}
	return "%" + name + "%"
}

func (r *Renderer) abstractText(f *citation.Fields, format normalize.AbstractFormat) string {
	if f.Rec.Abstract == "" {
		return r.opts.Messages.Msg("no_abstract_available")
	}
	return normalize.NormalizeAbstract(f.Rec.Abstract, format)
}

// translatedAbstract renders a stored translation when one exists,
// otherwise a link to an online translation of the original.
func (r *Renderer) translatedAbstract(f *citation.Fields) string {
	if r.abstracts != nil {
		if tr := r.abstracts.TranslatedAbstract(f.Rec.PMID); tr != "" {
			return span("abstract", tr)
		}
	}
	if f.Rec.Abstract == "" {
		return ""
	}
	return anchor(translateURL(f.Rec.Abstract), "abstractFr", "", "FR")
}

func (r *Renderer) localPDF(pmid, doi string) string {
	if r.pdfs == nil {
		return r.opts.Messages.Msg("no_pdf")
	}
	path := r.pdfs.LocalPath(pmid, doi)
	if path == "" {
		return r.opts.Messages.Msg("no_pdf")
	}
	return " " + anchor(path, "localPdf", path, "PDF")
}

func span(class, text string) string {
	return `<span class="` + class + `">` + text + `</span>`
}

func anchor(href, class, title, text string) string {
	a := `<a href="` + href + `" class="` + class + `" rel="noopener" target="_blank"`
	if title != "" {
		a += ` title="` + title + `"`
	}
	return a + `>` + text + `</a>`
}
