package usecase

import (
	"context"
	"errors"
	"strings"

	"orderflow/internal/domain/customer"
	"orderflow/internal/infra"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCEP       = errors.New("invalid CEP")
)

type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
	Save(ctx context.Context, c *customer.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error)
	FindAll(ctx context.Context) ([]*readmodel.CustomerRM, error)
}

// AddressResolver resolves a raw postal code; nil means the code could not
// be verified, whatever the cause.
type AddressResolver interface {
	Lookup(ctx context.Context, raw string) *customer.Address
}

type CustomerInput struct {
	Email string
	Name  string
	CEP   *string
}

func (in CustomerInput) cep() string {
	if in.CEP == nil {
		return ""
	}
	return strings.TrimSpace(*in.CEP)
}

// CustomerResolver owns the find-or-create-or-merge rules of ingestion.
//
// Decision table (lookup outcome × address presence):
//
//	not found                → create from input, dirty
//	found, name differs      → merge name, dirty
//	input has CEP            → resolve; nil is a hard failure, else merge, dirty
//	stored CEP incomplete    → re-resolve stored CEP (self-heal); same failure rule
//	otherwise                → address untouched
//
// The customer is persisted only when something changed.
type CustomerResolver struct {
	repo CustomerRepository
	cep  AddressResolver
}

func NewCustomerResolver(repo CustomerRepository, cep AddressResolver) *CustomerResolver {
	return &CustomerResolver{repo: repo, cep: cep}
}

func (r *CustomerResolver) Resolve(ctx context.Context, in CustomerInput) (*customer.Customer, error) {
	c, err := r.repo.FindByEmail(ctx, in.Email)
	dirty := false
	switch {
	case err == nil:
		dirty = c.Rename(in.Name)
	case infra.IsKind(err, infra.KindNotFound):
		c = customer.New(in.Email, in.Name)
		dirty = true
	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch {
	case in.cep() != "":
		addr := r.cep.Lookup(ctx, in.cep())
		if addr == nil {
			return nil, ErrInvalidCEP
		}
		c.ApplyAddress(*addr)
		dirty = true
	case c.HasIncompleteAddress():
		addr := r.cep.Lookup(ctx, *c.CEP())
		if addr == nil {
			return nil, ErrInvalidCEP
		}
		c.ApplyAddress(*addr)
		dirty = true
	}

	if dirty {
		if err := r.repo.Save(ctx, c); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return c, nil
}

type CustomerUseCase interface {
	ListCustomers(ctx context.Context) ([]*readmodel.CustomerRM, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error)
}

type customerUseCaseImpl struct {
	repo CustomerRepository
}

func NewCustomerUseCase(repo CustomerRepository) CustomerUseCase {
	return &customerUseCaseImpl{repo: repo}
}

func (u *customerUseCaseImpl) ListCustomers(ctx context.Context) ([]*readmodel.CustomerRM, error) {
	customers, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return customers, nil
}

func (u *customerUseCaseImpl) GetCustomer(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error) {
	rm, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}
