package service

import (
	"github.com/jeffleon2/fiadopay/internal/metrics"
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/jeffleon2/fiadopay/internal/plugins"
	"github.com/sirupsen/logrus"
)

type AntiFraudService struct {
	Registry *plugins.Registry
}

func NewAntiFraudService(registry *plugins.Registry) *AntiFraudService {
	return &AntiFraudService{Registry: registry}
}

// Approve reports whether every registered rule approves the payment. Every rule is
// evaluated even after a rejection. A rule that errors or panics votes to reject.
func (s *AntiFraudService) Approve(payment *models.Payment, req *dto.PaymentRequest) bool {
	approved := true
	for _, rule := range s.Registry.Rules() {
		if !evaluate(rule, payment, req) {
			approved = false
		}
	}

	if approved {
		metrics.FraudChecksTotal.WithLabelValues("approved").Inc()
	} else {
		metrics.FraudChecksTotal.WithLabelValues("rejected").Inc()
	}
	return approved
}

func evaluate(rule plugins.AntiFraudRule, payment *models.Payment, req *dto.PaymentRequest) (ok bool) {
	log := logrus.WithFields(logrus.Fields{"rule": rule.Name(), "payment_id": payment.ID})

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("fraud rule panicked: %v", r)
			ok = false
		}
	}()

	approved, err := rule.Approve(payment, req)
	if err != nil {
		log.WithError(err).Warn("fraud rule failed, counting as reject")
		return false
	}
	if !approved {
		log.Info("fraud rule rejected payment")
	}
	return approved
}
