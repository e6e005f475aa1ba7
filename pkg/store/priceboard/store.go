package priceboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dokind/esim-admin/pkg/models/store"
)

const (
	defaultTimeout = 10 * time.Second

	// successMarker is the explicit marker the price store puts in its
	// create/update response body. Anything else is a failure even on a
	// 2xx status.
	successMarker = "success"
)

type Config struct {
	// BaseURL is the price endpoint itself, e.g. .../api/user/page/price.
	BaseURL     string
	HTTPTimeout time.Duration
}

// Client reads and writes operator-set resale prices. Records are keyed by
// the store-assigned rowid; the packageid field carries the package's
// priceid as a string.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
	}
}

// List returns every resale price stored for one sku.
func (c *Client) List(ctx context.Context, skuID int) ([]store.SellingPrice, error) {
	target := fmt.Sprintf("%s?sku_id=%d", c.baseURL, skuID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price store returned status %d", resp.StatusCode)
	}

	var prices []store.SellingPrice
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return nil, fmt.Errorf("failed to decode price list: %w", err)
	}
	return prices, nil
}

// Save creates or updates a record. A set RowID selects update; the store
// confirms with an explicit success marker.
func (c *Client) Save(ctx context.Context, record store.SavePriceRequest) error {
	method := http.MethodPost
	if record.RowID != "" {
		method = http.MethodPatch
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode price record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to save price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("price store returned status %d", resp.StatusCode)
	}

	var saved store.SavePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return fmt.Errorf("failed to decode save response: %w", err)
	}
	if saved.Message != successMarker {
		return fmt.Errorf("price store rejected save: %q", saved.Message)
	}
	return nil
}

// Delete removes one record by its store-assigned rowid.
func (c *Client) Delete(ctx context.Context, rowID string) error {
	target := fmt.Sprintf("%s?rowid=%s", c.baseURL, url.QueryEscape(rowID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("price store returned status %d", resp.StatusCode)
	}
	return nil
}
