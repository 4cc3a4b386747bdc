package plugins

import (
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
)

// PixPlugin settles in a single installment with no interest.
type PixPlugin struct{}

func (p *PixPlugin) Method() string { return models.MethodPix }

func (p *PixPlugin) Enrich(payment *models.Payment, _ *dto.PaymentRequest) {
	if payment == nil {
		return
	}
	payment.Installments = 1
	payment.MonthlyInterest = nil
	payment.TotalWithInterest = payment.Amount
}
