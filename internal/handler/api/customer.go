package api

import (
	"errors"
	"net/http"

	resdto "orderflow/internal/handler/dto/response"
	"orderflow/internal/handler/httperr"
	"orderflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	uc usecase.CustomerUseCase
}

func NewCustomerHandler(uc usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// @Summary List customers
// @Description List known customers ordered by name
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Failure 500 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.uc.ListCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list customers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(customers))
}

// @Summary Get customer
// @Description Get a customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.uc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get customer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerRM(rm))
}
