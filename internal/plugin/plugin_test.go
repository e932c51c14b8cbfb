package plugin

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/medwiki/pubcite/internal/cache"
	"github.com/medwiki/pubcite/internal/config"
	"github.com/medwiki/pubcite/internal/pdfstore"
)

const fetchedRecord = `PMID- 15924077
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

// fakeFetcher serves canned records and counts requests.
type fakeFetcher struct {
	records map[string]string
	calls   int
}

func (f *fakeFetcher) FetchMedline(ctx context.Context, base, id string) (string, error) {
	f.calls++
	raw, ok := f.records[id]
	if !ok {
		return "", fmt.Errorf("record not found at NCBI: %s %s", base, id)
	}
	return raw, nil
}

func newTestPlugin(t *testing.T, fetcher *fakeFetcher) *Plugin {
	t.Helper()
	dir := t.TempDir()
	store, err := cache.NewStore(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	cross, err := cache.OpenCrossRef(filepath.Join(dir, "crossref.db"))
	if err != nil {
		t.Fatalf("OpenCrossRef: %v", err)
	}
	t.Cleanup(func() { cross.Close() })
	return New(config.Default(), store, cross, nil, fetcher, "")
}

func defaultFetcher() *fakeFetcher {
	return &fakeFetcher{records: map[string]string{"15924077": fetchedRecord}}
}

func TestExecuteDefaultCommand(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "15924077")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, `class="vancouver"`) {
		t.Errorf("default command not vancouver: %q", out)
	}
	if !strings.Contains(out, "Bonelli RM") {
		t.Errorf("citation missing author: %q", out)
	}
}

func TestExecuteExplicitCommand(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "long:15924077")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, `<span class="pubmed"><span class="long">`) {
		t.Errorf("wrapper missing: %q", out)
	}
}

func TestExecuteAbstractCommandUsesDiv(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "long_abstract:15924077")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, `<div class="pubmed"><div class="long_abstract">`) {
		t.Errorf("abstract command should be block level: %q", out)
	}
}

func TestExecuteCachesFetchedRecords(t *testing.T) {
	fetcher := defaultFetcher()
	p := newTestPlugin(t, fetcher)
	ctx := context.Background()

	if _, err := p.Execute(ctx, "pmid", "15924077"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := p.Execute(ctx, "pmid", "15924077"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (second hit from cache)", fetcher.calls)
	}
}

func TestExecuteRecordsCrossRef(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	if _, err := p.Execute(context.Background(), "pmid", "15924077"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	doi, err := p.ConvertID("15924077")
	if err != nil {
		t.Fatalf("ConvertID: %v", err)
	}
	if doi != "10.1358/dot.2005.41.6.893610" {
		t.Errorf("ConvertID = %q", doi)
	}
	pmid, err := p.ConvertID("10.1358/dot.2005.41.6.893610")
	if err != nil {
		t.Fatalf("ConvertID: %v", err)
	}
	if pmid != "15924077" {
		t.Errorf("reverse ConvertID = %q", pmid)
	}
}

func TestExecuteInvalidID(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	for _, id := range []string{"12345", "123456789", "12a456"} {
		out, err := p.Execute(context.Background(), "pmid", "long:"+id)
		if err != nil {
			t.Fatalf("Execute(%s): %v", id, err)
		}
		if !strings.Contains(out, "Syntax error") {
			t.Errorf("Execute(%s) = %q, want syntax error text", id, out)
		}
	}
}

func TestExecuteNotFound(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "long:99999999")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "99999999 was not found") {
		t.Errorf("Execute = %q, want not-found text", out)
	}
}

func TestExecuteMultipleIDsWrappedInList(t *testing.T) {
	fetcher := defaultFetcher()
	fetcher.records["25617070"] = strings.Replace(fetchedRecord, "15924077", "25617070", 1)
	p := newTestPlugin(t, fetcher)

	out, err := p.Execute(context.Background(), "pmid", "long:15924077,25617070")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out, "<ul>") || !strings.HasSuffix(out, "</ul>") {
		t.Errorf("list not wrapped: %q", out)
	}
	if strings.Count(out, "<li>") != 2 {
		t.Errorf("want 2 list items: %q", out)
	}
}

func TestSplitIDs(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"111111", []string{"111111"}},
		{"111111,222222,111111", []string{"111111", "222222"}},
		{"sort,111111,333333,222222", []string{"333333", "222222", "111111"}},
		{"sort,999999,12345678", []string{"12345678", "999999"}},
		{"sort,25617070,999999,15924077", []string{"25617070", "15924077", "999999"}},
		{" 111111 , 222222 ", []string{"111111", "222222"}},
	}
	for _, tc := range cases {
		got := splitIDs(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitIDs(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitIDs(%q) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}

func TestExecuteAddTT(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	ctx := context.Background()

	if _, err := p.Execute(ctx, "pmid", "addtt:15924077|Traitement de la maladie de Huntington."); err != nil {
		t.Fatalf("addtt: %v", err)
	}
	raw, err := p.RawRecord(ctx, "pmid", "15924077")
	if err != nil {
		t.Fatalf("RawRecord: %v", err)
	}
	if !strings.Contains(raw, "TT  - Traitement de la maladie de Huntington.") {
		t.Errorf("TT tag missing: %q", raw)
	}

	// A second addtt must not duplicate the tag.
	if _, err := p.Execute(ctx, "pmid", "addtt:15924077|Autre titre."); err != nil {
		t.Fatalf("addtt twice: %v", err)
	}
	raw, _ = p.RawRecord(ctx, "pmid", "15924077")
	if strings.Count(raw, "TT  - ") != 1 {
		t.Errorf("TT tag duplicated: %q", raw)
	}
}

func TestExecuteAddHash(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	ctx := context.Background()

	if _, err := p.Execute(ctx, "pmid", "addhash_fr:15924077|neuro,chorée"); err != nil {
		t.Fatalf("addhash_fr: %v", err)
	}
	raw, err := p.RawRecord(ctx, "pmid", "15924077")
	if err != nil {
		t.Fatalf("RawRecord: %v", err)
	}
	if !strings.Contains(raw, "HASH- neuro,chorée") {
		t.Errorf("HASH tag missing: %q", raw)
	}
}

func TestExecuteRawMedline(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "raw_medline:15924077")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out, "<pre>") || !strings.Contains(out, "PMID- 15924077") {
		t.Errorf("raw output = %q", out)
	}
}

func TestExecuteClearCache(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	ctx := context.Background()
	if _, err := p.Execute(ctx, "pmid", "15924077"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out, err := p.Execute(ctx, "pmid", "clear_raw_medline:")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if out != "Cleared." {
		t.Errorf("clear message = %q", out)
	}
	ids, err := p.CachedIDs()
	if err != nil {
		t.Fatalf("CachedIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("cache not empty: %v", ids)
	}
}

func TestExecuteSearch(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "search:huntington chorea")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "term=huntington+chorea") {
		t.Errorf("search url missing terms: %q", out)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "frobnicate:15924077")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "'frobnicate' was not found") {
		t.Errorf("unknown command output = %q", out)
	}
	if !strings.Contains(out, "vancouver") {
		t.Errorf("available commands not listed: %q", out)
	}
}

func TestExecuteDocFormat(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	ctx := context.Background()

	if _, err := p.Execute(ctx, "pmid", "doc_format:long"); err != nil {
		t.Fatalf("doc_format: %v", err)
	}
	out, err := p.Execute(ctx, "pmid", "vancouver:15924077")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, `class="long"`) {
		t.Errorf("doc_format did not override command: %q", out)
	}
}

func TestExecuteRecreateCrossRefs(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	ctx := context.Background()
	if _, err := p.Execute(ctx, "pmid", "15924077"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := p.Execute(ctx, "pmid", "recreate_cross_refs:"); err != nil {
		t.Fatalf("recreate: %v", err)
	}
	refs, err := p.CrossRefs()
	if err != nil {
		t.Fatalf("CrossRefs: %v", err)
	}
	if refs["15924077"] != "10.1358/dot.2005.41.6.893610" {
		t.Errorf("refs = %v", refs)
	}
}

func TestExecuteFullPDFListWithoutCrossRef(t *testing.T) {
	fetcher := defaultFetcher()
	dir := t.TempDir()
	store, err := cache.NewStore(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	pdfs, err := pdfstore.New(filepath.Join(dir, "pdf"))
	if err != nil {
		t.Fatalf("pdfstore.New: %v", err)
	}
	if err := pdfs.PutDOI("10.1358/dot.2005.41.6.893610", strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("PutDOI: %v", err)
	}
	p := New(config.Default(), store, nil, pdfs, fetcher, "")

	fetcher.records["10.1358/dot.2005.41.6.893610"] = fetchedRecord
	out, err := p.Execute(context.Background(), "pmid", "full_pdf_list:")
	if err != nil {
		t.Fatalf("full_pdf_list: %v", err)
	}
	if !strings.Contains(out, "Bonelli RM") {
		t.Errorf("resolved record missing from list: %q", out)
	}
}

func TestExecuteSelfTest(t *testing.T) {
	p := newTestPlugin(t, defaultFetcher())
	out, err := p.Execute(context.Background(), "pmid", "test:")
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if strings.Contains(out, "NOT Ok") {
		t.Errorf("self test failing: %q", out)
	}
}
