//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"orderflow/internal/domain/customer"
	"orderflow/internal/usecase"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seAddress() *customer.Address {
	return &customer.Address{
		Code:   "01001-000",
		State:  "SP",
		City:   "São Paulo",
		Street: "Praça da Sé",
	}
}

func TestCustomerResolver(t *testing.T) {
	t.Parallel()

	input := func() usecase.CustomerInput {
		return usecase.CustomerInput{Email: "ana@example.com", Name: "Ana"}
	}

	t.Run("creates a new customer on first order", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		resolver := usecase.NewCustomerResolver(repo, newFakeAddressResolver())

		c, err := resolver.Resolve(context.Background(), input())
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", c.Email())
		assert.Equal(t, "Ana", c.Name())
		assert.Len(t, repo.saved, 1)
	})

	t.Run("merges a changed name", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.byEmail["ana@example.com"] = customer.New("ana@example.com", "Ana")
		resolver := usecase.NewCustomerResolver(repo, newFakeAddressResolver())

		in := input()
		in.Name = "Ana Souza"
		c, err := resolver.Resolve(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", c.Name())
		assert.Len(t, repo.saved, 1)
	})

	t.Run("does not persist an unchanged customer", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.byEmail["ana@example.com"] = customer.New("ana@example.com", "Ana")
		resolver := usecase.NewCustomerResolver(repo, newFakeAddressResolver())

		_, err := resolver.Resolve(context.Background(), input())
		require.NoError(t, err)
		assert.Empty(t, repo.saved)
	})

	t.Run("resolves and merges an input postal code", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		addresses := newFakeAddressResolver()
		addresses.addresses["01001-000"] = seAddress()
		resolver := usecase.NewCustomerResolver(repo, addresses)

		in := input()
		in.CEP = ptr("01001-000")
		c, err := resolver.Resolve(context.Background(), in)
		require.NoError(t, err)
		require.NotNil(t, c.State())
		assert.Equal(t, "SP", *c.State())
		assert.Len(t, repo.saved, 1)
	})

	t.Run("trims the input postal code before lookup", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		addresses := newFakeAddressResolver()
		addresses.addresses["01001-000"] = seAddress()
		resolver := usecase.NewCustomerResolver(repo, addresses)

		in := input()
		in.CEP = ptr("  01001-000  ")
		_, err := resolver.Resolve(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, []string{"01001-000"}, addresses.lookups)
	})

	t.Run("unresolvable input postal code is a hard failure", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		resolver := usecase.NewCustomerResolver(repo, newFakeAddressResolver())

		in := input()
		in.CEP = ptr("99999-999")
		_, err := resolver.Resolve(context.Background(), in)
		require.ErrorIs(t, err, usecase.ErrInvalidCEP)
		assert.Empty(t, repo.saved)
	})

	t.Run("self-heals a stored incomplete address", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.byEmail["ana@example.com"] = customer.Reconstruct(
			uuid.New(), "ana@example.com", "Ana", ptr("01001-000"), nil, nil, nil)
		addresses := newFakeAddressResolver()
		addresses.addresses["01001-000"] = seAddress()
		resolver := usecase.NewCustomerResolver(repo, addresses)

		c, err := resolver.Resolve(context.Background(), input())
		require.NoError(t, err)
		require.NotNil(t, c.City())
		assert.Equal(t, "São Paulo", *c.City())
		assert.Len(t, repo.saved, 1)
	})

	t.Run("self-heal failure rejects too", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.byEmail["ana@example.com"] = customer.Reconstruct(
			uuid.New(), "ana@example.com", "Ana", ptr("01001-000"), nil, nil, nil)
		resolver := usecase.NewCustomerResolver(repo, newFakeAddressResolver())

		_, err := resolver.Resolve(context.Background(), input())
		require.ErrorIs(t, err, usecase.ErrInvalidCEP)
	})

	t.Run("complete stored address is left untouched", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.byEmail["ana@example.com"] = customer.Reconstruct(
			uuid.New(), "ana@example.com", "Ana",
			ptr("01001-000"), ptr("SP"), ptr("São Paulo"), ptr("Praça da Sé"))
		addresses := newFakeAddressResolver()
		resolver := usecase.NewCustomerResolver(repo, addresses)

		_, err := resolver.Resolve(context.Background(), input())
		require.NoError(t, err)
		assert.Empty(t, addresses.lookups)
		assert.Empty(t, repo.saved)
	})
}

func TestCustomerUseCase(t *testing.T) {
	t.Parallel()

	t.Run("lists customers", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.byID[uuid.New()] = &readmodel.CustomerRM{Name: "Bia", Email: "bia@example.com"}
		repo.byID[uuid.New()] = &readmodel.CustomerRM{Name: "Ana", Email: "ana@example.com"}

		got, err := usecase.NewCustomerUseCase(repo).ListCustomers(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Ana", got[0].Name)
	})

	t.Run("get reports absence distinctly", func(t *testing.T) {
		_, err := usecase.NewCustomerUseCase(newFakeCustomerRepo()).GetCustomer(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	})
}
