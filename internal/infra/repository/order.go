package repository

import (
	"context"
	"encoding/json"
	"errors"

	"orderflow/internal/domain/order"
	"orderflow/internal/infra"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order. The unique index on idempotency_key is the
// final arbiter of duplicates; a violation surfaces as DUPLICATE_KEY so
// concurrent submissions of the same key cannot both insert.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}

	var converted []byte
	if o.ConvertedPrices() != nil {
		converted, err = json.Marshal(o.ConvertedPrices())
		if err != nil {
			return infra.WrapRepoErr("failed to encode converted prices", err)
		}
	}

	var deadLetter []byte
	if o.DeadLetter() != nil {
		deadLetter, err = json.Marshal(o.DeadLetter())
		if err != nil {
			return infra.WrapRepoErr("failed to encode dead letter payload", err)
		}
	}

	const query = `
INSERT INTO orders (
    id, external_order_id, customer_id, items, currency,
    total_price, converted_prices, idempotency_key, status, dead_letter, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.Exec(ctx, query,
		o.ID(), o.ExternalOrderID(), o.CustomerID(), items, string(o.Currency()),
		o.TotalPrice().String(), converted, o.IdempotencyKey(), string(o.Status()), deadLetter, o.CreatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr("idempotency key already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

const orderColumns = `
    o.id, o.external_order_id, o.items, o.currency, o.total_price::text,
    o.converted_prices, o.idempotency_key, o.status, o.dead_letter, o.created_at,
    c.id, c.email, c.name, c.cep, c.state, c.city, c.street`

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error) {
	query := `
SELECT` + orderColumns + `
FROM orders o
JOIN customers c ON c.id = o.customer_id
WHERE o.id = $1`

	rm, err := scanOrderRM(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return rm, nil
}

func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.OrderRM, error) {
	query := `
SELECT` + orderColumns + `
FROM orders o
JOIN customers c ON c.id = o.customer_id
WHERE o.idempotency_key = $1`

	rm, err := scanOrderRM(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by idempotency key", err)
	}
	return rm, nil
}

// FindAll returns orders newest-first, optionally filtered by status.
func (r *OrderRepository) FindAll(ctx context.Context, status *order.Status) ([]*readmodel.OrderRM, error) {
	query := `
SELECT` + orderColumns + `
FROM orders o
JOIN customers c ON c.id = o.customer_id
WHERE $1::text IS NULL OR o.status = $1
ORDER BY o.created_at DESC`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.db.Query(ctx, query, statusArg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	return collectOrderRMs(rows)
}

// FindByIDs resolves a batch of order ids. Missing ids are simply absent
// from the result; the caller re-establishes ordering.
func (r *OrderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*readmodel.OrderRM, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
SELECT` + orderColumns + `
FROM orders o
JOIN customers c ON c.id = o.customer_id
WHERE o.id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find orders by IDs", err)
	}
	defer rows.Close()

	return collectOrderRMs(rows)
}

func collectOrderRMs(rows pgx.Rows) ([]*readmodel.OrderRM, error) {
	var result []*readmodel.OrderRM
	for rows.Next() {
		rm, err := scanOrderRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return result, nil
}

func scanOrderRM(row pgx.Row) (*readmodel.OrderRM, error) {
	var (
		rm       readmodel.OrderRM
		itemsRaw []byte
		currency string
		totalRaw string
		convRaw  []byte
		status   string
		deadRaw  []byte
	)

	err := row.Scan(
		&rm.ID, &rm.ExternalOrderID, &itemsRaw, &currency, &totalRaw,
		&convRaw, &rm.IdempotencyKey, &status, &deadRaw, &rm.CreatedAt,
		&rm.Customer.ID, &rm.Customer.Email, &rm.Customer.Name,
		&rm.Customer.CEP, &rm.Customer.State, &rm.Customer.City, &rm.Customer.Street,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsRaw, &rm.Items); err != nil {
		return nil, err
	}
	rm.Currency = order.Currency(currency)
	rm.Status = order.Status(status)

	rm.TotalPrice, err = decimal.NewFromString(totalRaw)
	if err != nil {
		return nil, err
	}

	if convRaw != nil {
		var conv order.ConvertedPrices
		if err := json.Unmarshal(convRaw, &conv); err != nil {
			return nil, err
		}
		rm.ConvertedPrices = &conv
	}
	if deadRaw != nil {
		var dl order.DeadLetter
		if err := json.Unmarshal(deadRaw, &dl); err != nil {
			return nil, err
		}
		rm.DeadLetter = &dl
	}

	return &rm, nil
}
