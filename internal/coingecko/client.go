package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrPriceNotFound error = errors.New("price not found in response")

// Client fetches spot prices from the CoinGecko simple-price endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// EthPrice returns the current ETH/USD spot price.
func (c *Client) EthPrice(ctx context.Context) (float64, error) {
	return c.spotPrice(ctx, "ethereum")
}

// TetherPrice returns the current USDT/USD spot price.
func (c *Client) TetherPrice(ctx context.Context) (float64, error) {
	return c.spotPrice(ctx, "tether")
}

func (c *Client) spotPrice(ctx context.Context, id string) (float64, error) {
	params := url.Values{}
	params.Set("ids", id)
	params.Set("vs_currencies", "usd")

	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var prices map[string]map[string]float64
	if err = json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	price, ok := prices[id]["usd"]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPriceNotFound, id)
	}

	return price, nil
}
