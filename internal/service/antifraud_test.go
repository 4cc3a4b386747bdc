package service_test

import (
	"errors"
	"testing"

	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/jeffleon2/fiadopay/internal/plugins"
	"github.com/jeffleon2/fiadopay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRule struct {
	name    string
	approve bool
	err     error
	panics  bool
	calls   *int
}

func (r stubRule) Name() string { return r.name }

func (r stubRule) Approve(*models.Payment, *dto.PaymentRequest) (bool, error) {
	if r.calls != nil {
		*r.calls++
	}
	if r.panics {
		panic("rule exploded")
	}
	return r.approve, r.err
}

func TestAntiFraudService_Approve(t *testing.T) {
	payment := &models.Payment{ID: "pay_1", Amount: 10}
	req := &dto.PaymentRequest{}

	tests := []struct {
		name  string
		rules []interface{}
		want  bool
	}{
		{name: "no rules approves", want: true},
		{name: "all approve", rules: []interface{}{stubRule{name: "a", approve: true}, stubRule{name: "b", approve: true}}, want: true},
		{name: "one rejects", rules: []interface{}{stubRule{name: "a", approve: true}, stubRule{name: "b"}}, want: false},
		{name: "error rejects", rules: []interface{}{stubRule{name: "a", approve: true, err: errors.New("boom")}}, want: false},
		{name: "panic rejects", rules: []interface{}{stubRule{name: "a", panics: true}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := plugins.NewRegistry(tt.rules...)
			require.NoError(t, err)

			got := service.NewAntiFraudService(registry).Approve(payment, req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAntiFraudService_EvaluatesEveryRule(t *testing.T) {
	calls := 0
	registry, err := plugins.NewRegistry(
		stubRule{name: "first", calls: &calls},
		stubRule{name: "second", panics: true, calls: &calls},
		stubRule{name: "third", approve: true, calls: &calls},
	)
	require.NoError(t, err)

	approved := service.NewAntiFraudService(registry).Approve(&models.Payment{}, &dto.PaymentRequest{})

	assert.False(t, approved)
	assert.Equal(t, 3, calls)
}

func TestEnrichmentService_EnrichByMethod(t *testing.T) {
	enrichment := service.NewEnrichmentService(plugins.Default())

	payment := &models.Payment{Method: models.MethodPix, Amount: 80, Installments: 6}
	require.NoError(t, enrichment.EnrichByMethod(payment, &dto.PaymentRequest{}))
	assert.Equal(t, 1, payment.Installments)
	assert.Equal(t, 80.0, payment.TotalWithInterest)

	err := enrichment.EnrichByMethod(&models.Payment{Method: "card"}, &dto.PaymentRequest{})
	assert.ErrorIs(t, err, service.ErrUnsupportedMethod)
}
