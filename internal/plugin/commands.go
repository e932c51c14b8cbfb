package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/medwiki/pubcite/internal/medline"
	"github.com/medwiki/pubcite/internal/ncbi"
)

// control dispatches the non-template commands.
func (p *Plugin) control(ctx context.Context, cmd, base, arg string) (string, error) {
	switch cmd {
	case "addtt":
		return "", p.appendTag(ctx, base, arg, "TT  - ")
	case "addhash_fr":
		return "", p.appendTag(ctx, base, arg, "HASH- ")
	case "raw_medline":
		return p.rawMedline(ctx, base, arg)
	case "clear_raw_medline":
		if err := p.store.Clear(); err != nil {
			return "", err
		}
		return p.msgs.Msg("cache_cleared"), nil
	case "remove_dir":
		if err := p.store.RemoveDir(); err != nil {
			return "", err
		}
		return p.msgs.Msg("dir_cleared"), nil
	case "search":
		link := `<div class="pubmed"><a class="pmid" rel="noopener" target="_blank" href="` +
			ncbi.SearchURL(arg) + `">` + escape(arg) + `</a></div>`
		return link, nil
	case "recreate_cross_refs":
		if p.cross == nil {
			return "", nil
		}
		return "", p.cross.RebuildFrom(p.store)
	case "convertid":
		return p.convertID(arg)
	case "full_pdf_list":
		return p.fullPDFList(ctx, base)
	case "test":
		return p.selfTest(), nil
	}
	out := `<div class="pdb_plugin">` + p.msgs.Msgf("plugin_cmd_not_found", escape(cmd)) + `</div>` +
		`<div class="pdb_plugin_text">` + p.msgs.Msgf("pubmed_available_cmd", availableCommands()) + `</div>`
	return out, nil
}

// appendTag handles "id|value" arguments: the value is appended to the
// cached raw record under the given tag unless the tag is already
// present.
func (p *Plugin) appendTag(ctx context.Context, base, arg, tag string) error {
	id, value, ok := strings.Cut(arg, "|")
	if !ok {
		return fmt.Errorf("malformed argument %q: want id|value", arg)
	}
	raw, err := p.medlineContent(ctx, base, id)
	if err != nil {
		return err
	}
	if strings.Contains(raw, tag) {
		return nil
	}
	raw += "\n" + tag + value + "\n"
	return p.store.Put(id, raw)
}

func (p *Plugin) rawMedline(ctx context.Context, base, arg string) (string, error) {
	var out strings.Builder
	for _, id := range splitIDs(arg) {
		if !validID(id) {
			return p.msgs.Msg("pubmed_wrong_format"), nil
		}
		raw, err := p.medlineContent(ctx, base, id)
		if err != nil || raw == "" {
			return p.msgs.Msgf("pubmed_not_found", id), err
		}
		out.WriteString("<pre>" + escape(raw) + "</pre>")
	}
	return out.String(), nil
}

// convertID maps between the two identifier spaces using the crossref
// index: a numeric argument looks up the DOI, anything else the PMID.
func (p *Plugin) convertID(arg string) (string, error) {
	if p.cross == nil {
		return "", nil
	}
	arg = strings.TrimSpace(arg)
	if numericList.MatchString(arg) {
		doi, err := p.cross.DOI(arg)
		if err != nil {
			return "", err
		}
		return doi, nil
	}
	pmid, err := p.cross.PMID(arg)
	if err != nil {
		return "", err
	}
	return pmid, nil
}

// fullPDFList renders every article that has a stored PDF but no entry
// in the page cache yet. PDFs filed by DOI are resolved to a PMID
// through the crossref index, fetching the record when needed so the
// index learns the mapping.
func (p *Plugin) fullPDFList(ctx context.Context, base string) (string, error) {
	if p.pdfs == nil {
		return "", nil
	}
	cached, err := p.store.List()
	if err != nil {
		return "", err
	}
	inCache := make(map[string]bool, len(cached))
	for _, id := range cached {
		inCache[id] = true
	}

	pmids, err := p.pdfs.PMIDs()
	if err != nil {
		return "", err
	}
	var pending []string
	for _, pmid := range pmids {
		if !inCache[pmid] {
			pending = append(pending, pmid)
		}
	}

	dois, err := p.pdfs.DOIs()
	if err != nil {
		return "", err
	}
	for _, doi := range dois {
		var pmid string
		if p.cross != nil {
			pmid, err = p.cross.PMID(doi)
			if err != nil {
				return "", err
			}
		}
		if pmid == "" {
			// Fetch by DOI so the record lands in the cache and the
			// crossref index picks up the mapping.
			raw, err := p.client.FetchMedline(ctx, base, doi)
			if err != nil || raw == "" {
				continue
			}
			rec := medline.Parse(raw)
			if !rec.HasPMID() {
				continue
			}
			pmid = rec.PMID
			if err := p.store.Put(pmid, raw); err != nil {
				return "", err
			}
			if p.cross != nil {
				if err := p.cross.Put(rec.PMID, rec.DOI); err != nil {
					return "", err
				}
			}
		}
		pending = append(pending, pmid)
	}

	var out strings.Builder
	out.WriteString("<ul>")
	for _, pmid := range pending {
		out.WriteString(p.renderOne(ctx, "long_abstract", base, pmid, true))
	}
	out.WriteString("</ul>")
	return out.String(), nil
}

// selfTest parses a canned record and reports whether the pipeline
// still produces the expected key fields.
func (p *Plugin) selfTest() string {
	rec := medline.Parse(selfTestRecord)
	checks := []struct {
		name string
		ok   bool
	}{
		{"pmid", rec.PMID == "15924077"},
		{"year", rec.Year == "2005"},
		{"journal", rec.JournalISO != ""},
		{"authors", len(rec.Authors) > 0},
	}
	var out strings.Builder
	for _, c := range checks {
		status := "Ok"
		if !c.ok {
			status = "NOT Ok"
		}
		out.WriteString(c.name + ": " + status + "<br/>")
	}
	return out.String()
}

const selfTestRecord = `PMID- 15924077
DP  - 2005 Apr
TI  - Drug treatment in Huntington's disease.
TA  - Drugs Today (Barc)
VI  - 41
IP  - 4
PG  - 419-26
FAU - Bonelli, Raphael M
AID - 10.1358/dot.2005.41.6.893610 [doi]
SO  - Drugs Today (Barc). 2005 Apr;41(4):419-26.
`

func availableCommands() string {
	names := make([]string, 0, len(templatesList))
	names = append(names, templatesList...)
	return strings.Join(names, ", ")
}

// templatesList is the command list shown when an unknown command is
// used, template commands first.
var templatesList = []string{
	"short", "long", "long_tt", "long_pdf", "long_tt_pdf",
	"long_abstract", "long_tt_abstract", "long_abstract_pdf", "long_tt_abstract_pdf",
	"vancouver", "vancouver_links", "npg", "npg_full", "gpnv_full",
	"listgroup", "user", "search", "raw_medline", "clear_raw_medline",
	"remove_dir", "recreate_cross_refs", "full_pdf_list",
	"addtt", "addhash_fr", "convertid", "doc_format", "test",
}
