package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches exchange rates from the currency backend. Conversion is a
// display-only convenience, so the client never fails a request: any error
// (network, bad payload, missing rate) degrades to a 1:1 rate.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a rate client for the given backend base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// rateResponse mirrors the backend payload:
// {"data": {"EUR": {"value": 0.91}}, "error": "..."}
type rateResponse struct {
	Data  map[string]struct {
		Value float64 `json:"value"`
	} `json:"data"`
	Error string `json:"error"`
}

// Rate returns the exchange rate from one currency to another. Same-currency
// requests short-circuit to 1 without a network call.
func (c *Client) Rate(ctx context.Context, from, to string) float64 {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" || from == to || c.baseURL == "" {
		return 1
	}

	endpoint := fmt.Sprintf("%s/exchange_rate?from_currency=%s&to_currency=%s",
		c.baseURL, url.QueryEscape(from), url.QueryEscape(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 1
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("exchange rate lookup %s->%s failed, using 1:1: %v", from, to, err)
		return 1
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("exchange rate lookup %s->%s returned %d, using 1:1", from, to, resp.StatusCode)
		return 1
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error != "" {
		return 1
	}

	rate := body.Data[to].Value
	if rate <= 0 {
		return 1
	}
	return rate
}
