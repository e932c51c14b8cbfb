package ncbi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchMedline(t *testing.T) {
	record := "PMID- 15924077\nTI  - A title.\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "15924077" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(record))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL + "/?id=%s"))
	got, err := c.FetchMedline(context.Background(), "pmid", "15924077")
	if err != nil {
		t.Fatalf("FetchMedline: %v", err)
	}
	if got != record {
		t.Errorf("FetchMedline = %q, want %q", got, record)
	}
}

func TestFetchMedlineNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL + "/?id=%s"))
	_, err := c.FetchMedline(context.Background(), "pmid", "99999999")
	if !IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestFetchMedlineRetriesShortBody(t *testing.T) {
	var calls int
	record := "PMID- 15924077\nTI  - A title.\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte("\n"))
			return
		}
		w.Write([]byte(record))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL + "/?id=%s"))
	got, err := c.FetchMedline(context.Background(), "pmid", "15924077")
	if err != nil {
		t.Fatalf("FetchMedline: %v", err)
	}
	if got != record {
		t.Errorf("FetchMedline = %q after retry", got)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestFetchMedlinePersistentShortBodyIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL + "/?id=%s"))
	_, err := c.FetchMedline(context.Background(), "pmid", "99999999")
	if !IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestFetchMedlineServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL + "/?id=%s"))
	_, err := c.FetchMedline(context.Background(), "pmid", "15924077")
	if err == nil || IsNotFound(err) {
		t.Errorf("err = %v, want invalid-response", err)
	}
}

func TestRecordURLRouting(t *testing.T) {
	c := NewClient()
	if u := c.recordURL("pmid", "15924077"); !strings.Contains(u, "lit/ctxp") {
		t.Errorf("pmid url = %q, want ctxp endpoint", u)
	}
	if u := c.recordURL("pmcid", "4567890"); !strings.Contains(u, "db=pmc") {
		t.Errorf("pmcid url = %q, want pmc efetch", u)
	}
}

func TestWithAPIKeyAppended(t *testing.T) {
	c := NewClient(WithAPIKey("sekrit"))
	if u := c.recordURL("pmid", "15924077"); !strings.Contains(u, "api_key=sekrit") {
		t.Errorf("url = %q, want api key", u)
	}
}
