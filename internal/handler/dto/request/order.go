package request

import (
	"fmt"

	"orderflow/internal/domain/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	OrderID        string        `json:"order_id" binding:"required"`
	Customer       OrderCustomer `json:"customer" binding:"required"`
	Items          []OrderItem   `json:"items" binding:"required"`
	Currency       string        `json:"currency" binding:"required"`
	IdempotencyKey string        `json:"idempotency_key" binding:"required"`
}

type OrderCustomer struct {
	Email string  `json:"email" binding:"required,email"`
	Name  string  `json:"name" binding:"required"`
	CEP   *string `json:"cep" binding:"omitempty"`
}

type OrderItem struct {
	SKU       string          `json:"sku" binding:"required"`
	Qty       int             `json:"qty" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Validate covers the rules gin's binding tags cannot express: positive
// quantities, non-negative prices with at most two decimal places, and a
// known currency code.
func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return errs.New("items must not be empty")
	}
	for i, item := range r.Items {
		if item.Qty < 1 {
			return errs.Newf("items[%d].qty must be >= 1", i)
		}
		if item.UnitPrice.IsNegative() {
			return errs.Newf("items[%d].unit_price must not be negative", i)
		}
		if item.UnitPrice.Exponent() < -2 {
			return errs.Newf("items[%d].unit_price must have at most 2 decimal places", i)
		}
	}
	if _, err := order.ParseCurrency(r.Currency); err != nil {
		return errs.Wrap(err, fmt.Sprintf("currency %q", r.Currency))
	}
	return nil
}

func (r *CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	currency, _ := order.ParseCurrency(r.Currency)

	items := make([]order.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = order.Item{
			SKU:       item.SKU,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
		}
	}

	return usecase.CreateOrderInput{
		ExternalOrderID: r.OrderID,
		Customer: usecase.CustomerInput{
			Email: r.Customer.Email,
			Name:  r.Customer.Name,
			CEP:   r.Customer.CEP,
		},
		Items:          items,
		Currency:       currency,
		IdempotencyKey: r.IdempotencyKey,
	}
}
