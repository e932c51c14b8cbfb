package render

import (
	"strings"

	"github.com/medwiki/pubcite/internal/citation"
	"github.com/medwiki/pubcite/internal/ncbi"
)

// listGroup renders the bootstrap list-group block: title, authors,
// journal, date, citation, subject terms, optional hashtags, then the
// outbound links section.
func (r *Renderer) listGroup(f *citation.Fields) string {
	rec := f.Rec
	msgs := r.opts.Messages

	var b strings.Builder
	b.WriteString(`<div class='bs-wrap bs-wrap-list-group list-group'>`)
	b.WriteString(`<ul class='list-group'>`)

	if rec.TranslatedTitle == "" {
		headerItem(&b, "<strong>"+rec.Title+"</strong>")
	} else {
		headerItem(&b, "<strong>"+rec.TranslatedTitle+"</strong>")
		iconItem(&b, "fa-file-o", rec.Title)
	}

	iconItem(&b, "fa-users", span("authors", f.Authors))
	iconItem(&b, "fa-newspaper-o", span("journal_title", rec.JournalTitle))
	iconItem(&b, "fa-calendar-check-o", span("date", strings.TrimSpace(rec.Year+" "+rec.Month)))
	iconItem(&b, "fa-code", span("iso", f.ISO))

	switch {
	case len(rec.Mesh) > 0:
		iconItem(&b, "fa-tags", span("mesh", strings.Join(rec.Mesh, ", ")))
	case len(rec.Keywords) > 0:
		iconItem(&b, "fa-tags", span("keywords", strings.Join(rec.Keywords, ", ")))
	default:
		iconItem(&b, "fa-tags", span("keywords", msgs.Msg("no_keywords")))
	}

	if rec.Hashtags != "" {
		iconItem(&b, "fa-hashtag", span("hashtags", rec.Hashtags))
	}

	headerItem(&b, "<strong>"+msgs.Msg("links")+"</strong>")

	if rec.DOI != "" {
		linkItem(&b, "fa-external-link", ncbi.DOIURL(rec.DOI), rec.DOI, "DOI: "+rec.DOI)
	}
	if rec.PMID != "" {
		linkItem(&b, "fa-external-link", ncbi.ArticleURL(rec.PMID), "PMID: "+rec.PMID, "PMID: "+rec.PMID)
		linkItem(&b, "fa-external-link", ncbi.SimilarURL(rec.PMID), "", msgs.Msg("similar_articles"))
		linkItem(&b, "fa-external-link", ncbi.CitedByURL(rec.PMID), "", msgs.Msg("cited_by"))
		linkItem(&b, "fa-external-link", ncbi.ReferencesURL(rec.PMID), "", msgs.Msg("references"))
	}
	if rec.PMCID != "" {
		linkItem(&b, "fa-external-link", ncbi.PMCPDFURL(rec.PMCID), "", msgs.Msg("free_full_text"))
	}

	linkItem(&b, "fa-twitter", r.TweetURL(f, TweetArticle), "", msgs.Msg("tweet_article"))
	linkItem(&b, "fa-twitter", r.TweetURL(f, TweetPage), "", msgs.Msg("tweet_page"))

	b.WriteString("</ul>")
	b.WriteString("</div>")
	return b.String()
}

func headerItem(b *strings.Builder, inner string) {
	b.WriteString(`<li class='level1 list-group-item list-group-item-warning pubmed'>`)
	b.WriteString(inner)
	b.WriteString("</li>")
}

func iconItem(b *strings.Builder, icon, inner string) {
	b.WriteString(`<li class='level1 list-group-item pubmed'>`)
	b.WriteString(` <i class='dw-icons fa ` + icon + ` fa-fw' style='font-size:16px'></i> `)
	b.WriteString(inner)
	b.WriteString("</li>")
}

func linkItem(b *strings.Builder, icon, href, title, text string) {
	b.WriteString(`<li class='level1 list-group-item pubmed'>`)
	b.WriteString(` <i class='dw-icons fa ` + icon + ` fa-fw' style='font-size:16px'></i> `)
	a := `<a href='` + href + `' class='list-group-item pubmed' rel='noopener' target='_blank'`
	if title != "" {
		a += ` title='` + title + `'`
	}
	b.WriteString(a + `>` + text + `</a>`)
	b.WriteString("</li>")
}
