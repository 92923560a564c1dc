// Package readmodel defines the read-side DTOs returned by the usecase
// layer. They are projections of stored state, safe to serialize as-is.
package readmodel

import (
	"time"

	"orderflow/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerRM struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	CEP    *string   `json:"cep,omitempty"`
	State  *string   `json:"state,omitempty"`
	City   *string   `json:"city,omitempty"`
	Street *string   `json:"street,omitempty"`
}

type OrderRM struct {
	ID              uuid.UUID              `json:"id"`
	ExternalOrderID string                 `json:"order_id"`
	Customer        CustomerRM             `json:"customer"`
	Items           []order.Item           `json:"items"`
	Currency        order.Currency         `json:"currency"`
	TotalPrice      decimal.Decimal        `json:"total_price"`
	ConvertedPrices *order.ConvertedPrices `json:"converted_prices"`
	IdempotencyKey  string                 `json:"idempotency_key"`
	Status          order.Status           `json:"status"`
	DeadLetter      *order.DeadLetter      `json:"dead_letter,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

type QueueMetricsRM struct {
	Pending       int        `json:"pending"`
	PendingOrders []*OrderRM `json:"pending_orders"`
}
