package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".esimcfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetProfiles(t *testing.T) {
	path := writeCfg(t, `[production]
api_base = https://api.example.com/v1
proxy_url = https://proxy.example.com/fetch
price_url = https://sheets.example.com/prices
rates_url = https://bank.example.com/rates

[staging]
api_base = https://staging.example.com/v1
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"production", "staging"}, profiles)
}

func TestGetEndpoints(t *testing.T) {
	path := writeCfg(t, `[production]
api_base = https://api.example.com/v1
proxy_url = https://proxy.example.com/fetch
price_url = https://sheets.example.com/prices
rates_url = https://bank.example.com/rates
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	endpoints, err := registry.GetEndpoints(context.Background(), "production")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", endpoints.APIBase)
	assert.Equal(t, "https://proxy.example.com/fetch", endpoints.ProxyURL)
	assert.Equal(t, "https://sheets.example.com/prices", endpoints.PriceURL)
	assert.Equal(t, "https://bank.example.com/rates", endpoints.RatesURL)
}

func TestGetEndpoints_UnknownProfile(t *testing.T) {
	path := writeCfg(t, `[production]
api_base = https://api.example.com/v1
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetEndpoints(context.Background(), "nope")
	assert.ErrorContains(t, err, "profile nope not found")
}

func TestGetEndpoints_MissingAPIBase(t *testing.T) {
	path := writeCfg(t, `[broken]
proxy_url = https://proxy.example.com/fetch
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetEndpoints(context.Background(), "broken")
	assert.ErrorContains(t, err, "has no api_base")
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
