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

// PaymentHandler manages the payment verification endpoint.
type PaymentHandler struct {
	facade  PaymentFacade
	metrics *metrics.Metrics
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, m *metrics.Metrics) *PaymentHandler {
	return &PaymentHandler{facade: facade, metrics: m}
}

// Verify handles POST /api/verify-payment. A failed signature check is a
// regular negative response, not an error status: the provider callback
// already fired, the payment is just unproven.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	claim := model.PaymentClaim{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	}

	var customer model.Customer
	if req.Customer != nil {
		customer = model.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		}
	}

	items := make([]model.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		items = append(items, model.LineItem{
			ProductRef: item.ProductRef,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}

	order, verified, err := h.facade.VerifyPayment(c.Request.Context(), claim, customer, items)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidClaim):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "orderId, paymentId and signature are required"})
		case errors.Is(err, domainErrors.ErrUpstream):
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "order could not be recorded"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}

	if !verified {
		h.metrics.Verifications.WithLabelValues(metrics.ResultRejected).Inc()
		c.JSON(http.StatusOK, dto.VerifyPaymentResponse{Verified: false})
		return
	}

	h.metrics.Verifications.WithLabelValues(metrics.ResultVerified).Inc()

	response := toVerifiedOrderResponse(*order)
	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{Verified: true, Order: &response})
}
