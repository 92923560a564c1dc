package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/domain/order"
	"orderflow/internal/infra"
	"orderflow/internal/infra/provider"
	"orderflow/internal/pkg/clock"
	"orderflow/internal/pkg/config"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/retry"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateOrder = errors.New("existing order with same idempotency key found")
	ErrInvalidSKUs    = errors.New("invalid SKUs")
	ErrOrderNotFound  = errors.New("order not found")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")

	errRatesUnavailable = errors.New("exchange rates unavailable")
)

const invalidSKUPreviewLimit = 5

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.OrderRM, error)
	FindAll(ctx context.Context, status *order.Status) ([]*readmodel.OrderRM, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*readmodel.OrderRM, error)
}

type CreateOrderInput struct {
	ExternalOrderID string
	Customer        CustomerInput
	Items           []order.Item
	Currency        order.Currency
	IdempotencyKey  string
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*readmodel.OrderRM, error)
	ListOrders(ctx context.Context, status *order.Status) ([]*readmodel.OrderRM, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error)
	QueueMetrics(ctx context.Context) (*readmodel.QueueMetricsRM, error)
}

type orderUseCaseImpl struct {
	orderRepo OrderRepository
	resolver  *CustomerResolver
	rates     provider.RateSource
	queue     *PendingQueue
	clock     clock.Clock
	cfg       config.IngestConfig
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	resolver *CustomerResolver,
	rates provider.RateSource,
	queue *PendingQueue,
	clock clock.Clock,
	cfg config.IngestConfig,
) OrderUseCase {
	return &orderUseCaseImpl{
		orderRepo: orderRepo,
		resolver:  resolver,
		rates:     rates,
		queue:     queue,
		clock:     clock,
		cfg:       cfg,
	}
}

// CreateOrder runs the ingestion pipeline: idempotency check, customer
// resolution, SKU validation, total computation, rate enrichment under
// retry, then persistence. Client errors abort before anything is written;
// an exhausted enrichment degrades the order instead of rejecting it.
func (u *orderUseCaseImpl) CreateOrder(ctx context.Context, in CreateOrderInput) (*readmodel.OrderRM, error) {
	if existing, err := u.checkIdempotency(ctx, in.IdempotencyKey); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	resolved, err := u.resolver.Resolve(ctx, in.Customer)
	if err != nil {
		return nil, err
	}

	if err := u.validateSKUs(in.Items); err != nil {
		return nil, err
	}

	total := order.TotalPrice(in.Items)
	enrichment := u.enrich(ctx, in, total)

	o, err := order.New(
		in.ExternalOrderID,
		resolved.ID(),
		in.Items,
		in.Currency,
		in.IdempotencyKey,
		total,
		enrichment,
		u.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := u.orderRepo.Create(ctx, o); err != nil {
		// lost the check-then-act race; the unique index settles it
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateOrder
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.queue.Append(o.ID())

	rm, err := u.orderRepo.FindByID(ctx, o.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// checkIdempotency returns a non-nil order only under the replay policy,
// when the key was seen before. Under the reject policy a duplicate is a
// client error.
func (u *orderUseCaseImpl) checkIdempotency(ctx context.Context, key string) (*readmodel.OrderRM, error) {
	existing, err := u.orderRepo.FindByIdempotencyKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if u.cfg.DuplicatePolicy == config.DuplicatePolicyReplay {
		return existing, nil
	}
	return nil, ErrDuplicateOrder
}

func (u *orderUseCaseImpl) validateSKUs(items []order.Item) error {
	skus := make([]string, len(items))
	for i, item := range items {
		skus[i] = item.SKU
	}

	result := order.ValidateSKUs(skus)
	if result.Valid {
		return nil
	}

	preview := result.InvalidSKUs
	if len(preview) > invalidSKUPreviewLimit {
		preview = preview[:invalidSKUPreviewLimit]
	}
	return fmt.Errorf("%w: %s", ErrInvalidSKUs, strings.Join(preview, ", "))
}

// enrich fetches rates for the order's currency under the retry policy and
// converts the total. Exhausted retries produce a dead letter instead of an
// error: the order is still recorded, flagged for later reprocessing.
func (u *orderUseCaseImpl) enrich(ctx context.Context, in CreateOrderInput, total decimal.Decimal) order.Enrichment {
	enrichCtx, cancel := context.WithTimeout(ctx, u.cfg.EnrichmentTimeout)
	defer cancel()

	policy := retry.Policy{
		MaxAttempts: u.cfg.MaxAttempts,
		BaseDelay:   u.cfg.RetryBaseDelay,
	}

	attempts := 0
	rates, err := retry.Do(enrichCtx, policy, func(ctx context.Context) (*provider.Rates, error) {
		attempts++
		// fresh cache per attempt so a cached absence cannot defeat the retry
		result := provider.NewRateCache(u.rates).Fetch(ctx, in.Currency)
		if result == nil {
			return nil, errRatesUnavailable
		}
		return result, nil
	})
	if err != nil {
		return order.Enrichment{
			DeadLetter: &order.DeadLetter{
				Reason:          err.Error(),
				Attempts:        attempts,
				Currency:        in.Currency,
				ExternalOrderID: in.ExternalOrderID,
				IdempotencyKey:  in.IdempotencyKey,
				At:              u.clock.Now(),
			},
		}
	}

	converted := order.Convert(total, in.Currency, rates.Values)
	return order.Enrichment{Converted: &converted}
}

func (u *orderUseCaseImpl) ListOrders(ctx context.Context, status *order.Status) ([]*readmodel.OrderRM, error) {
	orders, err := u.orderRepo.FindAll(ctx, status)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orders, nil
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error) {
	rm, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// QueueMetrics reports the pending-queue length and resolves the pending
// orders in insertion order. Ids that no longer resolve are dropped
// silently; the count still reflects the raw queue.
func (u *orderUseCaseImpl) QueueMetrics(ctx context.Context) (*readmodel.QueueMetricsRM, error) {
	ids := u.queue.Snapshot()
	metrics := &readmodel.QueueMetricsRM{
		Pending:       len(ids),
		PendingOrders: []*readmodel.OrderRM{},
	}
	if len(ids) == 0 {
		return metrics, nil
	}

	orders, err := u.orderRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	byID := make(map[uuid.UUID]*readmodel.OrderRM, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			metrics.PendingOrders = append(metrics.PendingOrders, o)
		}
	}
	return metrics, nil
}
