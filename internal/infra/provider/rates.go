package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"orderflow/internal/domain/order"
	"orderflow/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// Rates is one exchange-rate snapshot for a base currency. Values holds an
// entry per target currency the provider could quote; absence means the
// rate is unknown. The base currency always carries the identity rate.
type Rates struct {
	Base   order.Currency
	Values map[order.Currency]decimal.Decimal
	AsOf   string
}

// RateSource is implemented by the HTTP client and its caching wrapper.
type RateSource interface {
	Fetch(ctx context.Context, base order.Currency) *Rates
}

type RatesClient struct {
	baseURL string
	client  *http.Client
}

func NewRatesClient(cfg config.ProvidersConfig) *RatesClient {
	return &RatesClient{
		baseURL: strings.TrimRight(cfg.RatesBaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type ratesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
	Date  string                     `json:"date"`
}

// Fetch retrieves rates from base into the fixed target set. Any transport,
// status, or decode failure yields nil; the caller decides whether to retry.
func (c *RatesClient) Fetch(ctx context.Context, base order.Currency) *Rates {
	targets := make([]string, 0, len(order.Currencies()))
	for _, t := range order.Currencies() {
		targets = append(targets, string(t))
	}
	url := fmt.Sprintf("%s/latest?from=%s&to=%s", c.baseURL, base, strings.Join(targets, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("rates request build failed", "error", err)
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Warn("rates fetch failed", "base", base, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("rates fetch returned non-success status", "base", base, "status", resp.StatusCode)
		return nil
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("rates fetch returned malformed body", "base", base, "error", err)
		return nil
	}

	values := make(map[order.Currency]decimal.Decimal, len(order.Currencies()))
	for _, target := range order.Currencies() {
		if rate, ok := body.Rates[string(target)]; ok {
			values[target] = rate
		}
	}
	// providers omit the base from its own quote; substitute identity
	if _, ok := values[base]; !ok {
		values[base] = decimal.NewFromInt(1)
	}

	return &Rates{
		Base:   base,
		Values: values,
		AsOf:   body.Date,
	}
}

// RateCache memoizes lookups for the scope of one enrichment attempt,
// caching absent results too so a failing provider is asked only once
// per currency.
type RateCache struct {
	source RateSource
	cache  map[order.Currency]*Rates
}

func NewRateCache(source RateSource) *RateCache {
	return &RateCache{
		source: source,
		cache:  make(map[order.Currency]*Rates),
	}
}

func (rc *RateCache) Fetch(ctx context.Context, base order.Currency) *Rates {
	if cached, ok := rc.cache[base]; ok {
		return cached
	}
	rates := rc.source.Fetch(ctx, base)
	rc.cache[base] = rates
	return rates
}
