package khanbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_UsesMidRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"currency":"EUR","midRate":3900.5},
			{"currency":"USD","buyRate":3540,"sellRate":3560,"midRate":3550.25}
		]`))
	}))
	defer srv.Close()

	resolver := NewResolver(Config{RatesURL: srv.URL, Currency: "USD"})
	rate := resolver.Resolve(context.Background())

	assert.Equal(t, 3550.25, rate.Rate)
	assert.False(t, rate.Fallback)
	assert.False(t, rate.FetchedAt.IsZero())
}

func TestResolve_CurrencyMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"currency":"EUR","midRate":3900.5}]`))
	}))
	defer srv.Close()

	resolver := NewResolver(Config{RatesURL: srv.URL, Currency: "USD"})
	rate := resolver.Resolve(context.Background())

	assert.Equal(t, float64(DefaultFallbackRate), rate.Rate)
	assert.True(t, rate.Fallback)
}

func TestResolve_MidRateAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"currency":"USD","buyRate":3540}]`))
	}))
	defer srv.Close()

	resolver := NewResolver(Config{RatesURL: srv.URL})
	rate := resolver.Resolve(context.Background())

	assert.True(t, rate.Fallback)
}

func TestResolve_FeedDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	resolver := NewResolver(Config{RatesURL: srv.URL, FallbackRate: 2950})
	rate := resolver.Resolve(context.Background())

	assert.Equal(t, 2950.0, rate.Rate)
	assert.True(t, rate.Fallback)
}

func TestResolve_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	resolver := NewResolver(Config{RatesURL: srv.URL})
	rate := resolver.Resolve(context.Background())

	assert.Equal(t, float64(DefaultFallbackRate), rate.Rate)
	assert.True(t, rate.Fallback)
}
