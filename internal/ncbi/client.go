// Package ncbi fetches raw bibliographic records from the NCBI
// literature citation exporter and E-utilities endpoints.
package ncbi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ctxpMedlineTpl is the literature citation exporter endpoint
	// serving MEDLINE-format records for a PMID.
	ctxpMedlineTpl = "https://api.ncbi.nlm.nih.gov/lit/ctxp/v1/pubmed/?format=medline&id=%s"

	// efetchTpl serves records from a named E-utilities database
	// (pubmed or pmc) as XML.
	efetchTpl = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi?db=%s&id=%s&retmode=xml"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit is 3 requests per second, the E-utilities cap for
	// clients without an API key.
	RateLimit = 3.0

	// minPlausibleBody is the shortest body that can possibly hold a
	// record; anything under it triggers the single automatic retry.
	minPlausibleBody = 10
)

// Client is a rate-limited HTTP client for NCBI.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string // overrides the ctxp endpoint when set (tests)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the E-utilities API key appended to requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL redirects record fetches to a custom endpoint carrying
// a %s identifier slot (for testing).
func WithBaseURL(tpl string) ClientOption {
	return func(c *Client) { c.baseURL = tpl }
}

// NewClient creates a new NCBI client. The NCBI_API_KEY environment
// variable is honored when no explicit key is given.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
	}
	if key := os.Getenv("NCBI_API_KEY"); key != "" {
		c.apiKey = key
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchMedline retrieves the raw MEDLINE record for an identifier.
// base selects the identifier type: "pmid" uses the citation
// exporter, "pmcid" the PMC E-utilities database. A body under the
// plausibility threshold is fetched once more; a sustained short body
// means the record does not exist.
func (c *Client) FetchMedline(ctx context.Context, base, id string) (string, error) {
	u := c.recordURL(base, id)

	body, err := c.get(ctx, u)
	if err != nil {
		return "", err
	}
	if len(body) < minPlausibleBody {
		body, err = c.get(ctx, u)
		if err != nil {
			return "", err
		}
	}
	if len(body) < minPlausibleBody {
		return "", fmt.Errorf("%w: %s %s", ErrNotFound, base, id)
	}
	return string(body), nil
}

// FetchSummaryXML retrieves the EFetch XML summary for a PMID.
func (c *Client) FetchSummaryXML(ctx context.Context, pmid string) ([]byte, error) {
	u := fmt.Sprintf(efetchTpl, "pubmed", url.QueryEscape(pmid))
	body, err := c.get(ctx, c.withKey(u))
	if err != nil {
		return nil, err
	}
	if len(body) < minPlausibleBody {
		return nil, fmt.Errorf("%w: pmid %s", ErrNotFound, pmid)
	}
	return body, nil
}

func (c *Client) recordURL(base, id string) string {
	if c.baseURL != "" {
		return fmt.Sprintf(c.baseURL, url.QueryEscape(id))
	}
	if base == "pmcid" {
		return c.withKey(fmt.Sprintf(efetchTpl, "pmc", url.QueryEscape(id)))
	}
	return c.withKey(fmt.Sprintf(ctxpMedlineTpl, url.QueryEscape(id)))
}

func (c *Client) withKey(u string) string {
	if c.apiKey == "" {
		return u
	}
	return u + "&api_key=" + url.QueryEscape(c.apiKey)
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: status 404", ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
