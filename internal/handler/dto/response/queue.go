package response

import (
	"orderflow/internal/usecase/readmodel"
)

type QueueMetricsResponse struct {
	Pending       int              `json:"pending"`
	PendingOrders []*OrderResponse `json:"pending_orders"`
}

func FromQueueMetrics(rm *readmodel.QueueMetricsRM) *QueueMetricsResponse {
	return &QueueMetricsResponse{
		Pending:       rm.Pending,
		PendingOrders: FromOrderList(rm.PendingOrders),
	}
}
