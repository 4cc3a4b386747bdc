package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/fiadopay/internal/handlers"
	"github.com/jeffleon2/fiadopay/internal/handlers/mocks"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/jeffleon2/fiadopay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockPaymentService) {
	gin.SetMode(gin.TestMode)
	svc := mocks.NewMockPaymentService(t)
	h := handlers.NewPaymentHandler(svc)

	r := gin.New()
	r.POST("/fiadopay/gateway/payments", h.CreatePayment)
	r.GET("/fiadopay/gateway/payments/:id", h.GetPayment)
	r.POST("/fiadopay/gateway/payments/:id/refund", h.Refund)
	return r, svc
}

func do(r *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePayment_Created(t *testing.T) {
	r, svc := newRouter(t)
	rate := 0.01

	svc.EXPECT().
		CreatePayment(mock.Anything, "Bearer FAKE-1", mock.MatchedBy(func(k *string) bool {
			return k != nil && *k == "order-1"
		}), mock.MatchedBy(func(req *dto.PaymentRequest) bool {
			return req.Method == "CARD" && req.Amount == 100 && req.Installments != nil && *req.Installments == 3
		})).
		Return(&dto.PaymentView{
			ID:                "pay_1a2b3c4d",
			Status:            "PENDING",
			Method:            "CARD",
			Amount:            100,
			Installments:      3,
			MonthlyInterest:   &rate,
			TotalWithInterest: 103.03,
		}, nil).
		Once()

	body := []byte(`{"method":"CARD","amount":100,"currency":"BRL","installments":3}`)
	w := do(r, http.MethodPost, "/fiadopay/gateway/payments", body, map[string]string{
		"Authorization":   "Bearer FAKE-1",
		"Idempotency-Key": "order-1",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "pay_1a2b3c4d", got["id"])
	assert.Equal(t, 103.03, got["totalWithInterest"])
	assert.Equal(t, 0.01, got["monthlyInterest"])
}

func TestCreatePayment_NoIdempotencyKey(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().
		CreatePayment(mock.Anything, "Bearer FAKE-1", (*string)(nil), mock.Anything).
		Return(&dto.PaymentView{ID: "pay_1", Status: "PENDING"}, nil).
		Once()

	w := do(r, http.MethodPost, "/fiadopay/gateway/payments",
		[]byte(`{"method":"PIX","amount":10,"currency":"BRL"}`),
		map[string]string{"Authorization": "Bearer FAKE-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePayment_InvalidBody(t *testing.T) {
	r, svc := newRouter(t)

	for _, body := range []string{`{`, `{"method":"CARD","currency":"BRL"}`, `{"method":"CARD","amount":-5,"currency":"BRL"}`} {
		w := do(r, http.MethodPost, "/fiadopay/gateway/payments", []byte(body), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	svc.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("%w: bad token", service.ErrUnauthorized), want: http.StatusUnauthorized},
		{err: fmt.Errorf("%w: BOLETO", service.ErrUnsupportedMethod), want: http.StatusBadRequest},
		{err: errors.New("database down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		r, svc := newRouter(t)
		svc.EXPECT().CreatePayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

		w := do(r, http.MethodPost, "/fiadopay/gateway/payments",
			[]byte(`{"method":"CARD","amount":1,"currency":"BRL"}`), nil)
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}

func TestGetPayment(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().GetPayment(mock.Anything, "pay_1").Return(&dto.PaymentView{ID: "pay_1", Status: "APPROVED"}, nil).Once()
	svc.EXPECT().GetPayment(mock.Anything, "pay_404").Return(nil, service.ErrNotFound).Once()

	w := do(r, http.MethodGet, "/fiadopay/gateway/payments/pay_1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)

	w = do(r, http.MethodGet, "/fiadopay/gateway/payments/pay_404", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefund(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().
		Refund(mock.Anything, "Bearer FAKE-1", "pay_1").
		Return(&dto.RefundAck{ID: "ref_123", Status: "PENDING"}, nil).
		Once()
	svc.EXPECT().
		Refund(mock.Anything, "Bearer FAKE-2", "pay_1").
		Return(nil, service.ErrForbidden).
		Once()

	w := do(r, http.MethodPost, "/fiadopay/gateway/payments/pay_1/refund", nil, map[string]string{"Authorization": "Bearer FAKE-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"ref_123","status":"PENDING"}`, w.Body.String())

	w = do(r, http.MethodPost, "/fiadopay/gateway/payments/pay_1/refund", nil, map[string]string{"Authorization": "Bearer FAKE-2"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
