// Package handler holds the HTTP handlers translating between the API surface
// and the application services.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appordering "github.com/ordertaking/backend/internal/application/ordering"
	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/ordertaking/backend/internal/interfaces/http/dto"
)

// OrderHandler exposes the place-order workflow over HTTP
type OrderHandler struct {
	service *appordering.PlaceOrderService
	logger  *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *appordering.PlaceOrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.PlaceOrder)
	}
}

// PlaceOrder handles POST /orders. A rejected order is the caller's fault
// (400); a failing collaborator is not (502).
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req appordering.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	events, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		status, resp := errorResponse(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromEvents(events)))
}

func errorResponse(err error) (int, dto.Response) {
	var placeOrderErr ordering.PlaceOrderError
	if !errors.As(err, &placeOrderErr) {
		return http.StatusInternalServerError, dto.NewErrorResponse("INTERNAL_ERROR", "unexpected error")
	}

	switch placeOrderErr.(type) {
	case ordering.RemoteServiceError:
		return http.StatusBadGateway, dto.NewErrorResponse(placeOrderErr.Code(), placeOrderErr.Error())
	default:
		return http.StatusBadRequest, dto.NewErrorResponse(placeOrderErr.Code(), placeOrderErr.Error())
	}
}
