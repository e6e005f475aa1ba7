package khanbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 10 * time.Second

	// DefaultFallbackRate is used whenever the bank feed cannot be read.
	// Price display must never block on rate availability.
	DefaultFallbackRate = 3000
)

type Config struct {
	// RatesURL is the bank's rate feed, e.g. https://api.khanbank.com/v1/rates.
	RatesURL string
	// Currency is the foreign-currency code whose mid-rate is wanted.
	Currency string
	// FallbackRate overrides DefaultFallbackRate when positive.
	FallbackRate float64
	HTTPTimeout  time.Duration
}

// Resolver fetches the current foreign-to-tugrik mid-rate. It never fails:
// any transport or payload problem degrades to the fallback rate.
type Resolver struct {
	httpClient *http.Client
	ratesURL   string
	currency   string
	fallback   float64
}

func NewResolver(cfg Config) *Resolver {
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	fallback := cfg.FallbackRate
	if fallback <= 0 {
		fallback = DefaultFallbackRate
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}
	return &Resolver{
		httpClient: &http.Client{Timeout: timeout},
		ratesURL:   cfg.RatesURL,
		currency:   currency,
		fallback:   fallback,
	}
}

// Resolve returns the current mid-rate, or the fallback rate marked as such.
func (r *Resolver) Resolve(ctx context.Context) domain.ExchangeRate {
	logger := zerolog.Ctx(ctx)

	rate, err := r.fetchMidRate(ctx)
	if err != nil {
		logger.Warn().Err(err).
			Str("currency", r.currency).
			Float64("fallback", r.fallback).
			Msg("rate feed unavailable, using fallback rate")
		return domain.ExchangeRate{Rate: r.fallback, Fallback: true, FetchedAt: time.Now()}
	}
	return domain.ExchangeRate{Rate: rate, FetchedAt: time.Now()}
}

func (r *Resolver) fetchMidRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.ratesURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	var rates []store.CurrencyRate
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, fmt.Errorf("failed to decode rate feed: %w", err)
	}

	for _, entry := range rates {
		if entry.Currency != r.currency {
			continue
		}
		if entry.MidRate == nil || *entry.MidRate <= 0 {
			break
		}
		return *entry.MidRate, nil
	}
	return 0, fmt.Errorf("no usable %s mid-rate in feed", r.currency)
}
