package roamwifi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dokind/esim-admin/pkg/models/store"
	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// FetchError marks both fetch tiers exhausted for one catalog endpoint.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Config struct {
	// ProxyURL is the generic pass-through proxy tried first.
	ProxyURL string
	// BaseURL is the roamwifi API root, used to build target URLs and as
	// the direct second tier.
	BaseURL string
	// FallbackCatalog, when set, is served by the direct tier if the
	// catalog cannot be fetched at all. It keeps the dashboard from
	// rendering a blank screen on total upstream failure.
	FallbackCatalog *store.ContinentData
	HTTPTimeout     time.Duration
}

// Client fetches the continent catalog and per-sku package lists. Every
// fetch goes through the proxy tier first and falls back to a direct call.
type Client struct {
	httpClient      *http.Client
	proxyURL        string
	baseURL         string
	fallbackCatalog *store.ContinentData
}

func NewClient(cfg Config) *Client {
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient:      &http.Client{Timeout: timeout},
		proxyURL:        cfg.ProxyURL,
		baseURL:         cfg.BaseURL,
		fallbackCatalog: cfg.FallbackCatalog,
	}
}

// FetchCatalog retrieves the continent to country mapping. The direct tier
// owns the fallback dataset: the client only fails when both tiers fail and
// no fallback is configured.
func (c *Client) FetchCatalog(ctx context.Context) (store.ContinentData, error) {
	logger := zerolog.Ctx(ctx)
	target := c.baseURL + "/get-sku-list-continent"

	var data store.ContinentData
	if err := c.viaProxy(ctx, target, &data); err == nil {
		return data, nil
	} else {
		logger.Warn().Err(err).Msg("catalog proxy tier failed, trying direct")
	}

	if err := c.direct(ctx, target, &data); err != nil {
		if c.fallbackCatalog != nil {
			logger.Warn().Err(err).Msg("catalog direct tier failed, serving fallback dataset")
			return *c.fallbackCatalog, nil
		}
		return store.ContinentData{}, &FetchError{Endpoint: "get-sku-list-continent", Err: err}
	}
	return data, nil
}

// FetchPackages retrieves the package list for one sku. An empty
// esimPackageDtoList is a valid response, not an error.
func (c *Client) FetchPackages(ctx context.Context, skuID int) (store.PackageResponse, error) {
	logger := zerolog.Ctx(ctx)
	target := fmt.Sprintf("%s/get-packages?sku_id=%d", c.baseURL, skuID)

	var resp store.PackageResponse
	if err := c.viaProxy(ctx, target, &resp); err == nil {
		return resp, nil
	} else {
		logger.Warn().Err(err).Int("sku_id", skuID).Msg("packages proxy tier failed, trying direct")
	}

	if err := c.direct(ctx, target, &resp); err != nil {
		return store.PackageResponse{}, &FetchError{Endpoint: "get-packages", Err: err}
	}
	return resp, nil
}

type proxyRequest struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

func (c *Client) viaProxy(ctx context.Context, target string, out any) error {
	body, err := json.Marshal(proxyRequest{URL: target, Method: http.MethodGet})
	if err != nil {
		return fmt.Errorf("failed to encode proxy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.proxyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create proxy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) direct(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
