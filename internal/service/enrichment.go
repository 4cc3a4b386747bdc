package service

import (
	"fmt"

	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/jeffleon2/fiadopay/internal/plugins"
)

type EnrichmentService struct {
	Registry *plugins.Registry
}

func NewEnrichmentService(registry *plugins.Registry) *EnrichmentService {
	return &EnrichmentService{Registry: registry}
}

// EnrichByMethod runs the plugin registered for the payment's method. Callers that
// already looked the method up still go through here, so a payment never reaches the
// fraud rules without a plugin having computed its totals.
func (s *EnrichmentService) EnrichByMethod(payment *models.Payment, req *dto.PaymentRequest) error {
	plugin, ok := s.Registry.Plugin(payment.Method)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, payment.Method)
	}
	plugin.Enrich(payment, req)
	return nil
}
