package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopzone/checkout/internal/domain/errors"
	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/metrics"
	"github.com/shopzone/checkout/internal/server/http/dto"
)

// OrderHandler manages payment-order endpoints.
type OrderHandler struct {
	facade  OrderFacade
	metrics *metrics.Metrics
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{facade: facade, metrics: m}
}

// Create handles POST /api/create-order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), model.OrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "amount must be positive"})
		case errors.Is(err, domainErrors.ErrUpstream):
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment provider unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}

	h.metrics.OrdersCreated.Inc()

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		OrderID:  order.OrderID,
		Currency: order.Currency,
		Amount:   order.Amount,
		Key:      h.facade.PublicKey(),
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.VerifiedOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toVerifiedOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

func toVerifiedOrderResponse(order model.VerifiedOrder) dto.VerifiedOrderResponse {
	items := make([]dto.LineItemPayload, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		items = append(items, dto.LineItemPayload{
			ProductRef: item.ProductRef,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}
	return dto.VerifiedOrderResponse{
		OrderID:   order.OrderID,
		PaymentID: order.PaymentID,
		Customer: dto.CustomerPayload{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
			Phone: order.Customer.Phone,
		},
		LineItems:   items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
}
