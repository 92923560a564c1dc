//go:build unit

package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderflow/internal/infra/provider"
	"orderflow/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cepConfig(baseURL string) config.ProvidersConfig {
	return config.ProvidersConfig{
		CepBaseURL: baseURL,
		Timeout:    2 * time.Second,
	}
}

func TestCepClientLookup(t *testing.T) {
	t.Run("resolves a known code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/01001000/json/", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cep":"01001-000","uf":"SP","localidade":"São Paulo","logradouro":"Praça da Sé"}`))
		}))
		defer srv.Close()

		got := provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), "01001-000")
		require.NotNil(t, got)
		assert.Equal(t, "01001-000", got.Code)
		assert.Equal(t, "SP", got.State)
		assert.Equal(t, "São Paulo", got.City)
		assert.Equal(t, "Praça da Sé", got.Street)
	})

	t.Run("normalizes punctuation before the call", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"cep":"01310-100","uf":"SP","localidade":"São Paulo","logradouro":"Avenida Paulista"}`))
		}))
		defer srv.Close()

		got := provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), " 01.310-100 ")
		require.NotNil(t, got)
		assert.Equal(t, "/01310100/json/", gotPath)
	})

	t.Run("wrong length short-circuits without a call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("collaborator must not be called")
		}))
		defer srv.Close()

		client := provider.NewCepClient(cepConfig(srv.URL))
		assert.Nil(t, client.Lookup(context.Background(), "1234"))
		assert.Nil(t, client.Lookup(context.Background(), "123456789"))
		assert.Nil(t, client.Lookup(context.Background(), ""))
	})

	t.Run("unknown code yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"erro":true}`))
		}))
		defer srv.Close()

		assert.Nil(t, provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), "99999999"))
	})

	t.Run("non-success status yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		assert.Nil(t, provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), "01001000"))
	})

	t.Run("malformed body yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"cep":`))
		}))
		defer srv.Close()

		assert.Nil(t, provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), "01001000"))
	})

	t.Run("unreachable collaborator yields nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		assert.Nil(t, provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), "01001000"))
	})

	t.Run("missing cep in body falls back to normalized input", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"uf":"RJ","localidade":"Rio de Janeiro","logradouro":"Rua A"}`))
		}))
		defer srv.Close()

		got := provider.NewCepClient(cepConfig(srv.URL)).Lookup(context.Background(), "20040-020")
		require.NotNil(t, got)
		assert.Equal(t, "20040020", got.Code)
	})
}
