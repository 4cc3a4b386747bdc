package plugins

import (
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/shopspring/decimal"
)

const (
	cardMonthlyInterest = 0.01
	highAmountThreshold = 1000.00
)

var cardInterestFactor = decimal.NewFromFloat(1 + cardMonthlyInterest)

// CardPlugin prices card payments and doubles as the HighAmount fraud rule.
type CardPlugin struct{}

func (c *CardPlugin) Method() string { return models.MethodCard }

// Enrich applies compound interest of 1% per installment when the payment is split,
// rounding the total half-up to cents. Single installment payments carry no interest.
func (c *CardPlugin) Enrich(p *models.Payment, _ *dto.PaymentRequest) {
	if p == nil {
		return
	}

	if p.Installments > 1 {
		rate := cardMonthlyInterest
		p.MonthlyInterest = &rate

		factor := decimal.NewFromInt(1)
		for i := 0; i < p.Installments; i++ {
			factor = factor.Mul(cardInterestFactor)
		}
		total := decimal.NewFromFloat(p.Amount).Mul(factor).Round(2)
		p.TotalWithInterest = total.InexactFloat64()
		return
	}

	p.MonthlyInterest = nil
	p.TotalWithInterest = p.Amount
}

func (c *CardPlugin) Name() string { return "HighAmount" }

// Approve rejects amounts strictly above 1000.00.
func (c *CardPlugin) Approve(p *models.Payment, _ *dto.PaymentRequest) (bool, error) {
	if p == nil {
		return true, nil
	}
	return p.Amount <= highAmountThreshold, nil
}
