// Package plugin wires the cache, fetch client, parser, composer and
// renderer into the command surface embedded in wiki pages.
package plugin

import (
	"context"
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/medwiki/pubcite/internal/cache"
	"github.com/medwiki/pubcite/internal/citation"
	"github.com/medwiki/pubcite/internal/config"
	"github.com/medwiki/pubcite/internal/lang"
	"github.com/medwiki/pubcite/internal/medline"
	"github.com/medwiki/pubcite/internal/pdfstore"
	"github.com/medwiki/pubcite/internal/render"
)

// Fetcher retrieves raw MEDLINE records from NCBI. The concrete client
// lives in the ncbi package; tests substitute a canned one.
type Fetcher interface {
	FetchMedline(ctx context.Context, base, id string) (string, error)
}

// Plugin executes one wiki directive at a time. It is not safe for
// concurrent use; the wiki renders pages sequentially.
type Plugin struct {
	opts     *config.Options
	msgs     lang.Table
	store    *cache.Store
	cross    *cache.CrossRef
	pdfs     *pdfstore.Store
	client   Fetcher
	renderer *render.Renderer

	// doc_format directive state, scoped to the current page.
	docFormat    string
	useDocFormat bool
}

// New assembles a Plugin from its parts. pdfs may be nil when no PDF
// store is configured.
func New(opts *config.Options, store *cache.Store, cross *cache.CrossRef, pdfs *pdfstore.Store, client Fetcher, pageURL string) *Plugin {
	msgs := lang.Get(opts.Language)
	var locator render.PDFLocator
	if pdfs != nil {
		locator = pdfs
	}
	r := render.New(render.Options{
		Messages:   msgs,
		TwitterVia: opts.TwitterVia,
		PageURL:    pageURL,
	}, locator, store)
	return &Plugin{
		opts:     opts,
		msgs:     msgs,
		store:    store,
		cross:    cross,
		pdfs:     pdfs,
		client:   client,
		renderer: r,
	}
}

var numericList = regexp.MustCompile(`^[0-9,]+$`)

// Execute runs one directive. base names the identifier type ("pmid"
// or "pmcid"); req is "command:ids" or a bare identifier list, which
// selects the configured default command.
func (p *Plugin) Execute(ctx context.Context, base, req string) (string, error) {
	cmd, arg, _ := strings.Cut(req, ":")
	cmd = strings.ToLower(cmd)

	if numericList.MatchString(cmd) {
		arg = cmd
		cmd = p.opts.DefaultCommand
	}

	if cmd == "doc_format" {
		p.docFormat = arg
		p.useDocFormat = true
		return "", nil
	}
	if p.useDocFormat {
		cmd = p.docFormat
	}

	if p.isTemplateCommand(cmd) {
		return p.renderIDList(ctx, cmd, base, arg)
	}
	return p.control(ctx, cmd, base, arg)
}

func (p *Plugin) isTemplateCommand(cmd string) bool {
	if cmd == "user" {
		return p.opts.UserTemplate != ""
	}
	_, ok := render.Templates[cmd]
	return ok
}

// splitIDs expands a comma-separated identifier list. A leading "sort"
// entry requests descending numeric order; duplicates are dropped
// either way.
func splitIDs(arg string) []string {
	ids := strings.Split(arg, ",")
	descending := false
	if len(ids) > 0 && strings.TrimSpace(ids[0]) == "sort" {
		descending = true
		ids = ids[1:]
	}
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if descending {
		// Identifiers are digit strings, so a longer one is larger.
		sort.Slice(out, func(i, j int) bool {
			if len(out[i]) != len(out[j]) {
				return len(out[i]) > len(out[j])
			}
			return out[i] > out[j]
		})
	}
	return out
}

// validID accepts numeric identifiers of 6 to 8 digits.
func validID(id string) bool {
	if len(id) < 6 || len(id) > 8 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

func (p *Plugin) renderIDList(ctx context.Context, cmd, base, arg string) (string, error) {
	ids := splitIDs(arg)
	multiple := len(ids) > 1

	var out strings.Builder
	if multiple {
		out.WriteString("<ul>")
	}
	for _, id := range ids {
		out.WriteString(p.renderOne(ctx, cmd, base, id, multiple))
	}
	if multiple {
		out.WriteString("</ul>")
	}
	return out.String(), nil
}

// renderOne produces the HTML fragment for a single identifier. Bad
// identifiers and missing records degrade to a localized message, not
// an error; one broken reference must not break the page.
func (p *Plugin) renderOne(ctx context.Context, cmd, base, id string, multiple bool) string {
	if !validID(id) {
		return p.msgs.Msg("pubmed_wrong_format")
	}

	raw, err := p.medlineContent(ctx, base, id)
	if err != nil || raw == "" {
		return p.msgs.Msgf("pubmed_not_found", id)
	}

	rec := medline.Parse(raw)
	if !rec.HasPMID() {
		return p.msgs.Msgf("pubmed_not_found", id)
	}

	fields := citation.Compose(rec, citation.Options{
		AuthorLimit:      p.opts.AuthorLimit,
		EtAlText:         p.opts.EtAlText,
		StripJournalDots: p.opts.StripJournalDots,
		Messages:         p.msgs,
	})

	body := p.renderCommand(cmd, fields)

	// Abstract-bearing fragments are block-level; the rest inline.
	block := "span"
	if strings.Contains(cmd, "abstract") {
		block = "div"
	}

	var out strings.Builder
	if multiple {
		out.WriteString("<li>")
	}
	out.WriteString("<" + block + ` class="pubmed"><` + block + ` class="` + cmd + `"`)
	if multiple {
		out.WriteString(` style="margin-bottom:1em"`)
	}
	out.WriteString(">")
	out.WriteString(body)
	out.WriteString("</" + block + "></" + block + ">")
	if multiple {
		out.WriteString("</li>")
	}
	return out.String()
}

func (p *Plugin) renderCommand(cmd string, fields *citation.Fields) string {
	if cmd == "user" && p.opts.UserTemplate != "" {
		return p.renderer.Render(p.opts.UserTemplate, fields)
	}
	return p.renderer.Command(cmd, fields)
}

// medlineContent returns the raw record from the cache, fetching and
// caching it on a miss. Every pass keeps the crossref index current.
func (p *Plugin) medlineContent(ctx context.Context, base, id string) (string, error) {
	raw, err := p.store.Get(id)
	if err != nil {
		return "", err
	}
	if raw == "" {
		raw, err = p.client.FetchMedline(ctx, base, id)
		if err != nil {
			return "", err
		}
		if err := p.store.Put(id, raw); err != nil {
			return "", err
		}
	}
	if p.cross != nil {
		rec := medline.Parse(raw)
		if err := p.cross.Put(rec.PMID, rec.DOI); err != nil {
			return "", err
		}
	}
	return raw, nil
}

// RawRecord returns the raw MEDLINE record for an identifier, from
// the cache or freshly fetched.
func (p *Plugin) RawRecord(ctx context.Context, base, id string) (string, error) {
	return p.medlineContent(ctx, base, id)
}

// CachedIDs lists the identifiers present in the record cache.
func (p *Plugin) CachedIDs() ([]string, error) {
	return p.store.List()
}

// CrossRefs returns every PMID to DOI mapping in the index.
func (p *Plugin) CrossRefs() (map[string]string, error) {
	if p.cross == nil {
		return map[string]string{}, nil
	}
	return p.cross.All()
}

// ConvertID maps a PMID to its DOI or a DOI to its PMID.
func (p *Plugin) ConvertID(id string) (string, error) {
	return p.convertID(id)
}

// escape is used where raw record text lands inside HTML.
func escape(s string) string {
	return html.EscapeString(s)
}
