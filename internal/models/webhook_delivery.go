package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EventPaymentUpdated = "payment.updated"

// WebhookDelivery tracks the attempt series for one payment event. Records are never
// deleted and Delivered never flips back to false.
type WebhookDelivery struct {
	ID            string `gorm:"primaryKey;size:36"`
	EventID       string `gorm:"index;not null"`
	EventType     string `gorm:"size:64;not null"`
	PaymentID     string `gorm:"index;not null"`
	TargetURL     string
	Attempts      int  `gorm:"not null;default:0"`
	Delivered     bool `gorm:"not null;default:false;index"`
	LastAttemptAt *time.Time
	Signature     string
	Payload       string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d *WebhookDelivery) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	return
}

// EventIDFor derives the event id of a payment notification. Every event of the same
// payment shares it.
func EventIDFor(paymentID string) string {
	return "evt_" + paymentID
}
