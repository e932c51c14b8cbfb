package render

import (
	"net/url"
	"strings"

	"github.com/medwiki/pubcite/internal/citation"
	"github.com/medwiki/pubcite/internal/ncbi"
)

// TweetTarget selects which link a tweet intent carries.
type TweetTarget int

const (
	// TweetArticle links to the PubMed article page.
	TweetArticle TweetTarget = iota
	// TweetPage links to the wiki page embedding the citation.
	TweetPage
)

// TweetURL builds a Twitter web-intent link for the article. Stored
// hashtags are carried over with spaces turned into underscores;
// hyphens would split a hashtag, so they become a katakana prolonged
// sound mark, the convention the original tag authors used.
func (r *Renderer) TweetURL(f *citation.Fields, target TweetTarget) string {
	rec := f.Rec

	var query strings.Builder

	if rec.Hashtags != "" {
		var tags []string
		for _, tag := range strings.Split(rec.Hashtags, ",") {
			tag = strings.TrimSpace(tag)
			tag = strings.ReplaceAll(tag, " ", "_")
			tag = strings.ReplaceAll(tag, "-", "ー")
			tag = strings.ReplaceAll(tag, "#", "")
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		if len(tags) > 0 {
			query.WriteString("hashtags=" + rawEncode(strings.Join(tags, ",")) + "&")
		}
	}

	title := rec.TranslatedTitle
	if title == "" {
		title = rec.Title
	}
	text := title + "\n\n" + rec.JournalTitle + " " + rec.Year + "\n"
	query.WriteString("text=" + rawEncode(text))

	link := ncbi.ArticleURL(rec.PMID)
	if target == TweetPage {
		link = r.opts.PageURL
	}
	query.WriteString("&url=" + rawEncode(link))

	if r.opts.TwitterVia != "" {
		query.WriteString("&via=" + rawEncode(r.opts.TwitterVia))
	}

	return ncbi.TwitterIntentURL(query.String())
}

// tweetBlock renders the pair of tweet links shown under a citation.
func (r *Renderer) tweetBlock(f *citation.Fields) string {
	var b strings.Builder
	b.WriteString(`<div class="pubmed tweetme">`)
	b.WriteString(anchor(r.TweetURL(f, TweetArticle), "tweet", "", r.opts.Messages.Msg("tweet_article")))
	b.WriteString("<br/>")
	b.WriteString(anchor(r.TweetURL(f, TweetPage), "tweet", "", r.opts.Messages.Msg("tweet_page")))
	b.WriteString("</div>")
	return b.String()
}

// translateURL links an abstract to an online French translation.
func translateURL(abstract string) string {
	return "https://translate.google.com/?sl=auto&tl=fr&text=" +
		rawEncode(abstract) + "&op=translate"
}

// rawEncode percent-encodes a query value. Spaces become %20, not '+',
// so the value survives inside tweet intent links.
func rawEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
