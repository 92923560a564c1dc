package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeadLetter is the diagnostic payload attached to an order whose
// enrichment could not complete. It carries enough context to reprocess
// or inspect the order offline.
type DeadLetter struct {
	Reason          string    `json:"reason"`
	Attempts        int       `json:"attempts"`
	Currency        Currency  `json:"currency"`
	ExternalOrderID string    `json:"order_id"`
	IdempotencyKey  string    `json:"idempotency_key"`
	At              time.Time `json:"at"`
}

// Enrichment is the outcome of the rate-conversion step. Exactly one of
// Converted and DeadLetter is set.
type Enrichment struct {
	Converted  *ConvertedPrices
	DeadLetter *DeadLetter
}

// Order is immutable after creation: its status is decided once, at
// creation time, from the enrichment outcome.
type Order struct {
	id              uuid.UUID
	externalOrderID string
	customerID      uuid.UUID
	items           []Item
	currency        Currency
	totalPrice      decimal.Decimal
	convertedPrices *ConvertedPrices
	idempotencyKey  string
	status          Status
	deadLetter      *DeadLetter
	createdAt       time.Time
}

// New builds an order from the ingestion result. The status follows the
// enrichment outcome: a dead letter flags the order failed_enrichment with
// no converted prices, otherwise it is received with prices populated.
func New(
	externalOrderID string,
	customerID uuid.UUID,
	items []Item,
	currency Currency,
	idempotencyKey string,
	totalPrice decimal.Decimal,
	enrichment Enrichment,
	now time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if (enrichment.Converted == nil) == (enrichment.DeadLetter == nil) {
		return nil, ErrInconsistentStatus
	}

	status := StatusReceived
	if enrichment.DeadLetter != nil {
		status = StatusFailedEnrichment
	}

	return &Order{
		id:              uuid.New(),
		externalOrderID: externalOrderID,
		customerID:      customerID,
		items:           items,
		currency:        currency,
		totalPrice:      totalPrice,
		convertedPrices: enrichment.Converted,
		idempotencyKey:  idempotencyKey,
		status:          status,
		deadLetter:      enrichment.DeadLetter,
		createdAt:       now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	externalOrderID string,
	customerID uuid.UUID,
	items []Item,
	currency Currency,
	totalPrice decimal.Decimal,
	convertedPrices *ConvertedPrices,
	idempotencyKey string,
	status Status,
	deadLetter *DeadLetter,
	createdAt time.Time,
) *Order {
	return &Order{
		id:              id,
		externalOrderID: externalOrderID,
		customerID:      customerID,
		items:           items,
		currency:        currency,
		totalPrice:      totalPrice,
		convertedPrices: convertedPrices,
		idempotencyKey:  idempotencyKey,
		status:          status,
		deadLetter:      deadLetter,
		createdAt:       createdAt,
	}
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) ExternalOrderID() string           { return o.externalOrderID }
func (o *Order) CustomerID() uuid.UUID             { return o.customerID }
func (o *Order) Items() []Item                     { return o.items }
func (o *Order) Currency() Currency                { return o.currency }
func (o *Order) TotalPrice() decimal.Decimal       { return o.totalPrice }
func (o *Order) ConvertedPrices() *ConvertedPrices { return o.convertedPrices }
func (o *Order) IdempotencyKey() string            { return o.idempotencyKey }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) DeadLetter() *DeadLetter           { return o.deadLetter }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }

func (o *Order) IsEnriched() bool {
	return o.status != StatusFailedEnrichment
}
