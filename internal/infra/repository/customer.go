package repository

import (
	"context"
	"errors"

	"orderflow/internal/domain/customer"
	"orderflow/internal/infra"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindByEmail looks a customer up by its natural key. Email is matched
// exactly as stored; no case or whitespace normalization.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	const query = `
SELECT id, email, name, cep, state, city, street
FROM customers
WHERE email = $1`

	var (
		id                       uuid.UUID
		storedEmail, name        string
		cep, state, city, street *string
	)
	err := r.db.QueryRow(ctx, query, email).
		Scan(&id, &storedEmail, &name, &cep, &state, &city, &street)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}

	return customer.Reconstruct(id, storedEmail, name, cep, state, city, street), nil
}

// Save upserts by id, covering both the create and the merge path of
// customer resolution.
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	const query = `
INSERT INTO customers (id, email, name, cep, state, city, street)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    cep = EXCLUDED.cep,
    state = EXCLUDED.state,
    city = EXCLUDED.city,
    street = EXCLUDED.street`

	_, err := r.db.Exec(ctx, query,
		c.ID(), c.Email(), c.Name(), c.CEP(), c.State(), c.City(), c.Street())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr("customer email already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to save customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error) {
	const query = `
SELECT id, email, name, cep, state, city, street
FROM customers
WHERE id = $1`

	rm := &readmodel.CustomerRM{}
	err := r.db.QueryRow(ctx, query, id).
		Scan(&rm.ID, &rm.Email, &rm.Name, &rm.CEP, &rm.State, &rm.City, &rm.Street)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return rm, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*readmodel.CustomerRM, error) {
	const query = `
SELECT id, email, name, cep, state, city, street
FROM customers
ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*readmodel.CustomerRM
	for rows.Next() {
		rm := &readmodel.CustomerRM{}
		if err := rows.Scan(&rm.ID, &rm.Email, &rm.Name, &rm.CEP, &rm.State, &rm.City, &rm.Street); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return result, nil
}
