package response

import (
	"time"

	"orderflow/internal/domain/order"
	"orderflow/internal/usecase/readmodel"
)

type OrderResponse struct {
	ID              string                 `json:"id"`
	OrderID         string                 `json:"order_id"`
	Customer        CustomerResponse       `json:"customer"`
	Items           []order.Item           `json:"items"`
	Currency        string                 `json:"currency"`
	TotalPrice      string                 `json:"total_price"`
	ConvertedPrices *order.ConvertedPrices `json:"converted_prices"`
	IdempotencyKey  string                 `json:"idempotency_key"`
	Status          string                 `json:"status"`
	DeadLetter      *order.DeadLetter      `json:"dead_letter,omitempty"`
	CreatedAt       string                 `json:"created_at"`
}

func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	return &OrderResponse{
		ID:              rm.ID.String(),
		OrderID:         rm.ExternalOrderID,
		Customer:        FromCustomerRM(&rm.Customer),
		Items:           rm.Items,
		Currency:        string(rm.Currency),
		TotalPrice:      rm.TotalPrice.StringFixed(2),
		ConvertedPrices: rm.ConvertedPrices,
		IdempotencyKey:  rm.IdempotencyKey,
		Status:          string(rm.Status),
		DeadLetter:      rm.DeadLetter,
		CreatedAt:       rm.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func FromOrderList(items []*readmodel.OrderRM) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		res[i] = FromOrderRM(it)
	}
	return res
}
