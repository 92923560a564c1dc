//go:build unit

package builder

import (
	"time"

	"orderflow/internal/domain/order"
	reqdto "orderflow/internal/handler/dto/request"
	"orderflow/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ExternalOrderID string
	CustomerEmail   string
	CustomerName    string
	CustomerCEP     *string
	Items           []order.Item
	Currency        order.Currency
	IdempotencyKey  string
	Status          order.Status
	CreatedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ExternalOrderID: "EXT-1001",
		CustomerEmail:   "ana@example.com",
		CustomerName:    "Ana",
		Items: []order.Item{
			{SKU: "ABC-123", Qty: 2, UnitPrice: decimal.RequireFromString("49.90")},
			{SKU: "XYZ_9", Qty: 1, UnitPrice: decimal.RequireFromString("20.00")},
		},
		Currency:       order.USD,
		IdempotencyKey: "idem-1001",
		Status:         order.StatusCompleted,
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) WithCurrency(c order.Currency) *OrderBuilder {
	b.Currency = c
	return b
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

func (b *OrderBuilder) WithCEP(cep string) *OrderBuilder {
	b.CustomerCEP = &cep
	return b
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.OrderItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.OrderItem{SKU: it.SKU, Qty: it.Qty, UnitPrice: it.UnitPrice}
	}
	return reqdto.CreateOrderRequest{
		OrderID: b.ExternalOrderID,
		Customer: reqdto.OrderCustomer{
			Email: b.CustomerEmail,
			Name:  b.CustomerName,
			CEP:   b.CustomerCEP,
		},
		Items:          items,
		Currency:       string(b.Currency),
		IdempotencyKey: b.IdempotencyKey,
	}
}

func (b *OrderBuilder) BuildOrderRM() *readmodel.OrderRM {
	total := order.TotalPrice(b.Items)
	rm := &readmodel.OrderRM{
		ID:              uuid.New(),
		ExternalOrderID: b.ExternalOrderID,
		Customer: readmodel.CustomerRM{
			ID:    uuid.New(),
			Email: b.CustomerEmail,
			Name:  b.CustomerName,
			CEP:   b.CustomerCEP,
		},
		Items:          b.Items,
		Currency:       b.Currency,
		TotalPrice:     total,
		IdempotencyKey: b.IdempotencyKey,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
	if b.Status == order.StatusCompleted {
		converted := order.Convert(total, b.Currency, map[order.Currency]decimal.Decimal{
			order.BRL: decimal.RequireFromString("5.0"),
			order.USD: decimal.RequireFromString("1.0"),
			order.EUR: decimal.RequireFromString("0.9"),
		})
		rm.ConvertedPrices = &converted
	}
	return rm
}
