package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/jeffleon2/fiadopay/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	headerAuthorization  = "Authorization"
	headerIdempotencyKey = "Idempotency-Key"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, authorization string, idempotencyKey *string, req *dto.PaymentRequest) (*dto.PaymentView, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentView, error)
	Refund(ctx context.Context, authorization, paymentID string) (*dto.RefundAck, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /fiadopay/gateway/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var idempotencyKey *string
	if key, ok := c.Request.Header[http.CanonicalHeaderKey(headerIdempotencyKey)]; ok && len(key) > 0 {
		idempotencyKey = &key[0]
	}

	view, err := h.Service.CreatePayment(c.Request.Context(), c.GetHeader(headerAuthorization), idempotencyKey, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GET /fiadopay/gateway/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	view, err := h.Service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// POST /fiadopay/gateway/payments/:id/refund
func (h *PaymentHandler) Refund(c *gin.Context) {
	ack, err := h.Service.Refund(c.Request.Context(), c.GetHeader(headerAuthorization), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ack)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnsupportedMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
