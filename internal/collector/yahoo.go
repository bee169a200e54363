package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"FxPulse/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher against the public Yahoo Finance chart
// API. It needs no credentials.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	return &YahooFetcher{
		BaseURL: defaultYahooBaseURL,
		Client:  newHTTPClient(proxyURL, timeout),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// FetchCloses issues a single GET for one trading day of history at the
// requested interval and normalizes the closing prices.
func (f *YahooFetcher) FetchCloses(ctx context.Context, pair, timeframe string) (*model.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=1d",
		f.BaseURL, url.PathEscape(PairSymbol(pair)), url.QueryEscape(timeframe))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	closes, err := doChartRequest(f.Client, req)
	if err != nil {
		return nil, err
	}
	return &model.PriceSeries{
		Pair:      pair,
		Timeframe: timeframe,
		Closes:    closes,
		FetchedAt: time.Now(),
	}, nil
}

// doChartRequest executes a chart request and decodes the close series.
func doChartRequest(client *http.Client, req *http.Request) ([]float64, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("chart read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Status: resp.StatusCode, Body: truncate(string(body), 200)}
	}
	return decodeCloses(body)
}

func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
