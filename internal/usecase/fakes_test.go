//go:build unit

package usecase_test

import (
	"context"
	"sort"

	"orderflow/internal/domain/customer"
	"orderflow/internal/domain/order"
	"orderflow/internal/infra"
	"orderflow/internal/infra/provider"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type fakeOrderRepo struct {
	byID       map[uuid.UUID]*readmodel.OrderRM
	byKey      map[string]*readmodel.OrderRM
	created    []*order.Order
	createErr  error
	customerRM readmodel.CustomerRM
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		byID:  make(map[uuid.UUID]*readmodel.OrderRM),
		byKey: make(map[string]*readmodel.OrderRM),
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	rm := &readmodel.OrderRM{
		ID:              o.ID(),
		ExternalOrderID: o.ExternalOrderID(),
		Customer:        f.customerRM,
		Items:           o.Items(),
		Currency:        o.Currency(),
		TotalPrice:      o.TotalPrice(),
		ConvertedPrices: o.ConvertedPrices(),
		IdempotencyKey:  o.IdempotencyKey(),
		Status:          o.Status(),
		DeadLetter:      o.DeadLetter(),
		CreatedAt:       o.CreatedAt(),
	}
	f.byID[rm.ID] = rm
	f.byKey[rm.IdempotencyKey] = rm
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.OrderRM, error) {
	if rm, ok := f.byID[id]; ok {
		return rm, nil
	}
	return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
}

func (f *fakeOrderRepo) FindByIdempotencyKey(_ context.Context, key string) (*readmodel.OrderRM, error) {
	if rm, ok := f.byKey[key]; ok {
		return rm, nil
	}
	return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
}

func (f *fakeOrderRepo) FindAll(_ context.Context, status *order.Status) ([]*readmodel.OrderRM, error) {
	var result []*readmodel.OrderRM
	for _, rm := range f.byID {
		if status == nil || rm.Status == *status {
			result = append(result, rm)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeOrderRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*readmodel.OrderRM, error) {
	var result []*readmodel.OrderRM
	for _, id := range ids {
		if rm, ok := f.byID[id]; ok {
			result = append(result, rm)
		}
	}
	return result, nil
}

type fakeCustomerRepo struct {
	byEmail map[string]*customer.Customer
	byID    map[uuid.UUID]*readmodel.CustomerRM
	saved   []*customer.Customer
	saveErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byEmail: make(map[string]*customer.Customer),
		byID:    make(map[uuid.UUID]*readmodel.CustomerRM),
	}
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
}

func (f *fakeCustomerRepo) Save(_ context.Context, c *customer.Customer) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.byEmail[c.Email()] = c
	f.saved = append(f.saved, c)
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.CustomerRM, error) {
	if rm, ok := f.byID[id]; ok {
		return rm, nil
	}
	return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
}

func (f *fakeCustomerRepo) FindAll(_ context.Context) ([]*readmodel.CustomerRM, error) {
	var result []*readmodel.CustomerRM
	for _, rm := range f.byID {
		result = append(result, rm)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

type fakeAddressResolver struct {
	addresses map[string]*customer.Address
	lookups   []string
}

func newFakeAddressResolver() *fakeAddressResolver {
	return &fakeAddressResolver{addresses: make(map[string]*customer.Address)}
}

func (f *fakeAddressResolver) Lookup(_ context.Context, raw string) *customer.Address {
	f.lookups = append(f.lookups, raw)
	return f.addresses[raw]
}

type fakeRateSource struct {
	result *provider.Rates
	calls  int
}

func (f *fakeRateSource) Fetch(_ context.Context, _ order.Currency) *provider.Rates {
	f.calls++
	return f.result
}
