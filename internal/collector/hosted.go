package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"FxPulse/internal/model"
)

// ErrMissingCredential is returned when a hosted data source is configured
// without an API key.
var ErrMissingCredential = errors.New("hosted data source requires an api key")

// HostedFetcher implements Fetcher against a self-hosted chart endpoint
// speaking the same chart JSON schema as Yahoo, authenticated with a
// Bearer token.
type HostedFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHostedFetcher creates a hosted-endpoint fetcher. Missing credentials
// fail here, at construction time, never later during a request.
func NewHostedFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) (*HostedFetcher, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	return &HostedFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL, timeout),
	}, nil
}

func (f *HostedFetcher) Name() string { return "hosted" }

func (f *HostedFetcher) FetchCloses(ctx context.Context, pair, timeframe string) (*model.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=1d",
		f.BaseURL, url.PathEscape(PairSymbol(pair)), url.QueryEscape(timeframe))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.APIKey)

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
