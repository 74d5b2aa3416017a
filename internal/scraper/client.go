package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

const defaultBaseURL = "https://dknetwork.draftkings.com/draftkings-sportsbook-betting-splits/"

// Client fetches paginated betting-splits documents.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig provides optional overrides.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient builds a splits page client with sane defaults.
func NewClient(cfg ClientConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPage retrieves one page of the splits document for a sport and
// date range. Page 1 is addressed with tb_emt=0 and no page parameter;
// later pages carry tb_page instead. That asymmetry is how the source
// site paginates.
func (c *Client) FetchPage(ctx context.Context, sportID int, dateRange splits.DateRange, page int) (*goquery.Document, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("tb_eg", strconv.Itoa(sportID))
	q.Set("tb_edate", string(dateRange))
	if page <= 1 {
		q.Set("tb_emt", "0")
	} else {
		q.Set("tb_page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("splits page %s: %s", resp.Status, string(body))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse splits page: %w", err)
	}
	return doc, nil
}
