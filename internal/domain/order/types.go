package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrNoItems            = errors.New("order must have at least one item")
	ErrInconsistentStatus = errors.New("order status inconsistent with enrichment result")
)

// Currency is one of the fixed set the pipeline converts between.
type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies is the fixed conversion target set, in stable order.
func Currencies() []Currency {
	return []Currency{BRL, USD, EUR}
}

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case BRL, USD, EUR:
		return Currency(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
}

type Status string

const (
	StatusReceived         Status = "received"
	StatusProcessing       Status = "processing"
	StatusCompleted        Status = "completed"
	StatusFailedEnrichment Status = "failed_enrichment"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusReceived, StatusProcessing, StatusCompleted, StatusFailedEnrichment:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Item is a single order line. Immutable once submitted; stored as-is.
type Item struct {
	SKU       string          `json:"sku"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ConvertedPrices holds the total expressed in each target currency.
// A nil entry means the rate was unavailable for that currency.
type ConvertedPrices struct {
	BRL *decimal.Decimal `json:"BRL"`
	USD *decimal.Decimal `json:"USD"`
	EUR *decimal.Decimal `json:"EUR"`
}
