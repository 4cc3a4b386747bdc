package models

import "time"

const (
	PaymentUpdatedEventTopic = "payments.updated"
)

type PaymentUpdatedEvent struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPaymentUpdatedEvent(p *Payment, at time.Time) PaymentUpdatedEvent {
	return PaymentUpdatedEvent{
		ID:         p.ID,
		MerchantID: p.MerchantID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Method:     p.Method,
		Status:     string(p.Status),
		OccurredAt: at,
	}
}

// WebhookNotification is the body posted to the merchant webhook URL. Field order is
// the wire order.
type WebhookNotification struct {
	PaymentID  string    `json:"paymentId"`
	Status     string    `json:"status"`
	Amount     float64   `json:"amount"`
	MerchantID string    `json:"merchantId"`
	OccurredAt time.Time `json:"occurredAt"`
}
