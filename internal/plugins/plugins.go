package plugins

import (
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
)

// PaymentPlugin computes the derived financial fields of one payment method. Enrich
// mutates only the payment passed in.
type PaymentPlugin interface {
	Method() string
	Enrich(payment *models.Payment, req *dto.PaymentRequest)
}

// AntiFraudRule votes on a payment. An error counts as a reject vote.
type AntiFraudRule interface {
	Name() string
	Approve(payment *models.Payment, req *dto.PaymentRequest) (bool, error)
}
