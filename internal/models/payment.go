package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "PENDING"
	StatusApproved PaymentStatus = "APPROVED"
	StatusDeclined PaymentStatus = "DECLINED"
	StatusRefunded PaymentStatus = "REFUNDED"

	MethodCard = "CARD"
	MethodPix  = "PIX"
)

// Payment is owned by exactly one merchant. The (merchant_id, idempotency_key) pair is
// unique; a nil key never collides.
type Payment struct {
	ID                string        `gorm:"primaryKey;size:32" json:"id"`
	MerchantID        string        `gorm:"not null;index;uniqueIndex:idx_payments_merchant_idem,priority:1" json:"merchant_id"`
	IdempotencyKey    *string       `gorm:"uniqueIndex:idx_payments_merchant_idem,priority:2" json:"idempotency_key,omitempty"`
	Method            string        `gorm:"size:32;not null" json:"method"`
	Amount            float64       `gorm:"not null" json:"amount"`
	Currency          string        `gorm:"size:8" json:"currency"`
	Installments      int           `gorm:"not null;default:1" json:"installments"`
	MonthlyInterest   *float64      `json:"monthly_interest,omitempty"`
	TotalWithInterest float64       `json:"total_with_interest"`
	Status            PaymentStatus `gorm:"size:16;not null;index" json:"status"`
	MetadataOrderID   string        `json:"metadata_order_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = NewPaymentID()
	}

	return
}

// NewPaymentID returns ids shaped like pay_1a2b3c4d.
func NewPaymentID() string {
	return "pay_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Touch advances UpdatedAt to now without ever moving it backwards.
func (p *Payment) Touch(now time.Time) {
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusRefunded:
		return true
	default:
		return false
	}
}
