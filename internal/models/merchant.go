package models

import "time"

type MerchantStatus string

const (
	MerchantActive   MerchantStatus = "ACTIVE"
	MerchantInactive MerchantStatus = "INACTIVE"
)

type Merchant struct {
	ID         string         `gorm:"primaryKey;size:32"`
	Name       string         `gorm:"not null"`
	Status     MerchantStatus `gorm:"size:16;not null"`
	WebhookURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m *Merchant) IsActive() bool {
	return m.Status == MerchantActive
}
