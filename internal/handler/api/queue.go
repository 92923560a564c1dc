package api

import (
	"net/http"

	resdto "orderflow/internal/handler/dto/response"
	"orderflow/internal/handler/httperr"
	"orderflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	uc usecase.OrderUseCase
}

func NewQueueHandler(uc usecase.OrderUseCase) *QueueHandler {
	return &QueueHandler{uc: uc}
}

// @Summary Queue metrics
// @Description Report the pending-queue length and the pending orders in insertion order
// @Tags queue
// @Produce json
// @Success 200 {object} resdto.QueueMetricsResponse
// @Failure 500 {object} map[string]string
// @Router /queue/metrics [get]
func (h *QueueHandler) Metrics(c *gin.Context) {
	metrics, err := h.uc.QueueMetrics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get queue metrics", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueMetrics(metrics))
}
