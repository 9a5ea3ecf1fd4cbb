// Package yahoo fetches daily closing prices from the Yahoo Finance chart
// API. It is the default PriceProvider of the dcas command.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/lazyinvest/dcasim"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client queries the Yahoo Finance v8 chart endpoint.
//
// The zero value is not usable; use New. Responses are cached on disk and
// expire daily.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client with the daily-expiring disk cache installed.
func New() *Client {
	return &Client{BaseURL: defaultBaseURL, HTTPClient: newCachingClient()}
}

var _ dcasim.PriceProvider = (*Client)(nil)

// Fetch returns the daily closing prices of symbol over r, both bounds
// included. It wraps dcasim.ErrDataUnavailable when the symbol is unknown
// or the API returns no rows.
func (c *Client) Fetch(ctx context.Context, symbol string, r dcasim.Range) (*dcasim.PriceSeries, error) {
	// period2 is exclusive, push it past the end of the last requested day.
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.BaseURL, symbol, r.From.Unix(), r.To.Add(1).Unix())

	jobj, err := c.jwget(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dcasim.ErrDataUnavailable, symbol, err)
	}
	series, err := parseChart(jobj, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dcasim.ErrDataUnavailable, symbol, err)
	}
	return series, nil
}

// parseChart extracts the (timestamp, close) arrays from the loosely-shaped
// chart payload and keeps the days that fall inside r.
func parseChart(jobj any, r dcasim.Range) (*dcasim.PriceSeries, error) {
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && desc != nil {
		return nil, fmt.Errorf("chart API error: %v", desc)
	}

	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("no timestamps in response: %w", err)
	}
	jcl, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("no closing prices in response: %w", err)
	}
	timestamps, ok1 := jts.([]any)
	closes, ok2 := jcl.([]any)
	if !ok1 || !ok2 || len(timestamps) == 0 {
		return nil, fmt.Errorf("empty price response")
	}

	series := dcasim.NewPriceSeries()
	for i, jt := range timestamps {
		ts, ok := jt.(float64)
		if !ok || i >= len(closes) {
			continue
		}
		// null closes happen on halted days; skip them like non-trading days.
		cl, ok := closes[i].(float64)
		if !ok || cl == 0 {
			continue
		}
		on := dcasim.DateOfUnix(int64(ts))
		if r.Contains(on) {
			series.Append(on, cl)
		}
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("no trading days in range %s", r)
	}
	return series, nil
}

// jwget performs an HTTP GET and decodes the JSON response body.
func (c *Client) jwget(ctx context.Context, addr string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects the default Go user agent.
	req.Header.Set("User-Agent", "curl/8")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}
