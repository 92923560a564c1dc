package api

import (
	"errors"
	"net/http"

	"orderflow/internal/domain/order"
	reqdto "orderflow/internal/handler/dto/request"
	resdto "orderflow/internal/handler/dto/response"
	"orderflow/internal/handler/httperr"
	"orderflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	uc usecase.OrderUseCase
}

func NewOrderHandler(uc usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// @Summary Ingest order
// @Description Ingest an order webhook: resolve the customer, validate SKUs, enrich with exchange rates and persist
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order payload"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhook/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	rm, err := h.uc.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateOrder),
			errors.Is(err, usecase.ErrInvalidCEP),
			errors.Is(err, usecase.ErrInvalidSKUs):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create order", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderRM(rm))
}

// @Summary List orders
// @Description List ingested orders, newest first, optionally filtered by status
// @Tags orders
// @Produce json
// @Param status query string false "Order status filter"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var status *order.Status
	if v := c.Query("status"); v != "" {
		parsed, err := order.ParseStatus(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		status = &parsed
	}

	orders, err := h.uc.ListOrders(c.Request.Context(), status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(orders))
}

// @Summary Get order
// @Description Get an ingested order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}
