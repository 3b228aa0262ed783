package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrAPIFailure error = errors.New("etherscan api failure")

const (
	startBlock = "0"
	endBlock   = "99999999"
)

// Client talks to the Etherscan account module over HTTP. It issues one
// blocking request per call and leaves retrying to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// EthBalance returns the current ETH balance of the address in wei,
// as the decimal string the API reports.
func (c *Client) EthBalance(ctx context.Context, address string) (string, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "balance")
	params.Set("address", address)
	params.Set("tag", "latest")

	var balance string
	if err := c.get(ctx, params, &balance); err != nil {
		return "", fmt.Errorf("get eth balance: %w", err)
	}
	return balance, nil
}

// TokenBalance returns the current balance of the address for an ERC-20
// contract, in the token's raw fixed-point units.
func (c *Client) TokenBalance(ctx context.Context, contract, address string) (string, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokenbalance")
	params.Set("contractaddress", contract)
	params.Set("address", address)
	params.Set("tag", "latest")

	var balance string
	if err := c.get(ctx, params, &balance); err != nil {
		return "", fmt.Errorf("get token balance: %w", err)
	}
	return balance, nil
}

// NormalTransactions returns the full ordered ETH transfer history of the
// address, oldest first. An address with no history yields an empty slice.
func (c *Client) NormalTransactions(ctx context.Context, address string) ([]TxRecord, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", address)
	params.Set("startblock", startBlock)
	params.Set("endblock", endBlock)
	params.Set("sort", "asc")

	var records []TxRecord
	if err := c.get(ctx, params, &records); err != nil {
		return nil, fmt.Errorf("get normal transactions: %w", err)
	}
	return records, nil
}

// TokenTransfers returns the full ordered ERC-20 transfer-event history of
// the address for one contract, oldest first.
func (c *Client) TokenTransfers(ctx context.Context, contract, address string) ([]TxRecord, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokentx")
	params.Set("contractaddress", contract)
	params.Set("address", address)
	params.Set("startblock", startBlock)
	params.Set("endblock", endBlock)
	params.Set("sort", "asc")

	var records []TxRecord
	if err := c.get(ctx, params, &records); err != nil {
		return nil, fmt.Errorf("get token transfers: %w", err)
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, params url.Values, result any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d", ErrAPIFailure, resp.StatusCode)
	}

	var env envelope
	if err = json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("unmarshal response envelope: %w", err)
	}

	if env.Status != "1" {
		// the API reports an empty result set as a failure
		if strings.HasPrefix(env.Message, "No transactions found") {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrAPIFailure, env.Message)
	}

	if err = json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}

	return nil
}
