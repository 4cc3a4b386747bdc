package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/fiadopay/internal/models"
)

type PaymentRequest struct {
	Method          string  `json:"method" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Currency        string  `json:"currency" binding:"required"`
	Installments    *int    `json:"installments,omitempty"`
	MetadataOrderID string  `json:"metadataOrderId,omitempty"`
}

// Sanitize trims the free-text fields and upper-cases the method and currency codes.
func (r *PaymentRequest) Sanitize() {
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.MetadataOrderID = strings.TrimSpace(r.MetadataOrderID)
}

func (r *PaymentRequest) InstallmentCount() int {
	if r.Installments == nil {
		return 1
	}
	return *r.Installments
}

func (r *PaymentRequest) ToEntity(merchantID string, idempotencyKey *string, now time.Time) *models.Payment {
	return &models.Payment{
		ID:              models.NewPaymentID(),
		MerchantID:      merchantID,
		IdempotencyKey:  idempotencyKey,
		Method:          r.Method,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Installments:    r.InstallmentCount(),
		Status:          models.StatusPending,
		MetadataOrderID: r.MetadataOrderID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type PaymentView struct {
	ID                string   `json:"id"`
	Status            string   `json:"status"`
	Method            string   `json:"method"`
	Amount            float64  `json:"amount"`
	Installments      int      `json:"installments"`
	MonthlyInterest   *float64 `json:"monthlyInterest"`
	TotalWithInterest float64  `json:"totalWithInterest"`
}

func NewPaymentView(p *models.Payment) *PaymentView {
	return &PaymentView{
		ID:                p.ID,
		Status:            string(p.Status),
		Method:            p.Method,
		Amount:            p.Amount,
		Installments:      p.Installments,
		MonthlyInterest:   p.MonthlyInterest,
		TotalWithInterest: p.TotalWithInterest,
	}
}

type RefundAck struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
