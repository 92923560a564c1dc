// Package provider holds clients for the two outbound collaborators: the
// postal-code lookup and the exchange-rate API. Both follow the same
// contract: every failure mode collapses to an absent result, never an
// error, so the caller owns the retry policy.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"orderflow/internal/domain/customer"
	"orderflow/internal/pkg/config"
)

type CepClient struct {
	baseURL string
	client  *http.Client
}

func NewCepClient(cfg config.ProvidersConfig) *CepClient {
	return &CepClient{
		baseURL: strings.TrimRight(cfg.CepBaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type cepResponse struct {
	Erro       bool   `json:"erro"`
	Cep        string `json:"cep"`
	Uf         string `json:"uf"`
	Localidade string `json:"localidade"`
	Logradouro string `json:"logradouro"`
}

// Lookup resolves a raw postal code to an address. The code is normalized
// to digits first; anything that is not exactly 8 digits is no match. An
// unknown code, a non-success response, or a malformed body all yield nil.
func (c *CepClient) Lookup(ctx context.Context, raw string) *customer.Address {
	normalized := digitsOnly(raw)
	if len(normalized) != 8 {
		return nil
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, normalized)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("cep lookup request build failed", "error", err)
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Warn("cep lookup failed", "cep", normalized, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("cep lookup returned non-success status", "cep", normalized, "status", resp.StatusCode)
		return nil
	}

	var body cepResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("cep lookup returned malformed body", "cep", normalized, "error", err)
		return nil
	}
	if body.Erro {
		return nil
	}

	code := body.Cep
	if code == "" {
		code = normalized
	}

	return &customer.Address{
		Code:   code,
		State:  body.Uf,
		City:   body.Localidade,
		Street: body.Logradouro,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
