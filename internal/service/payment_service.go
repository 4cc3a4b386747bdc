package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/fiadopay/internal/auth"
	"github.com/jeffleon2/fiadopay/internal/lock"
	"github.com/jeffleon2/fiadopay/internal/metrics"
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/models/dto"
	"github.com/jeffleon2/fiadopay/internal/plugins"
	"github.com/jeffleon2/fiadopay/internal/worker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PaymentRepo defines the payment persistence operations the service relies on.
// Create must fail with gorm.ErrDuplicatedKey when the (merchant, idempotency key)
// pair is already taken.
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetByIdempotencyKey(ctx context.Context, key, merchantID string) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment, id string) error
}

type MerchantRepo interface {
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
}

// Submitter runs tasks off the request path.
type Submitter interface {
	Submit(task worker.Task) error
}

// DeliveryEnqueuer creates the webhook delivery for a payment event and schedules its
// first attempt.
type DeliveryEnqueuer interface {
	EnqueueDelivery(ctx context.Context, paymentID string) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

type SettlementConfig struct {
	Delay       time.Duration
	FailureRate float64
}

// PaymentService runs the synchronous request path and the asynchronous settlement
// job. Publisher may be nil, in which case status events are not streamed.
type PaymentService struct {
	Repo       PaymentRepo
	Merchants  MerchantRepo
	Registry   *plugins.Registry
	Enrichment *EnrichmentService
	AntiFraud  *AntiFraudService
	Workers    Submitter
	Webhooks   DeliveryEnqueuer
	Publisher  Publisher
	Settlement SettlementConfig

	// Random draws the settlement outcome in [0, 1).
	Random func() float64
	Now    func() time.Time

	locks lock.Table
}

func NewPaymentService(
	repo PaymentRepo,
	merchants MerchantRepo,
	registry *plugins.Registry,
	workers Submitter,
	webhooks DeliveryEnqueuer,
	publisher Publisher,
	settlement SettlementConfig,
) *PaymentService {
	return &PaymentService{
		Repo:       repo,
		Merchants:  merchants,
		Registry:   registry,
		Enrichment: NewEnrichmentService(registry),
		AntiFraud:  NewAntiFraudService(registry),
		Workers:    workers,
		Webhooks:   webhooks,
		Publisher:  publisher,
		Settlement: settlement,
		Random:     rand.Float64,
		Now:        time.Now,
	}
}

// CreatePayment stores a new payment, enriched and fraud-checked, and hands it to the
// settlement job without waiting for it.
//
// A retried request with a known idempotency key returns the stored payment as is,
// without re-running enrichment or scheduling a second settlement.
func (s *PaymentService) CreatePayment(ctx context.Context, authorization string, idempotencyKey *string, req *dto.PaymentRequest) (*dto.PaymentView, error) {
	merchant, err := s.authorize(ctx, authorization)
	if err != nil {
		return nil, err
	}

	key := normalizeKey(idempotencyKey)
	if key != nil {
		existing, err := s.Repo.GetByIdempotencyKey(ctx, *key, merchant.ID)
		if err == nil {
			return dto.NewPaymentView(existing), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("looking up idempotency key: %w", err)
		}
	}

	req.Sanitize()
	if _, ok := s.Registry.Plugin(req.Method); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, req.Method)
	}

	payment := req.ToEntity(merchant.ID, key, s.Now())
	if err := s.Enrichment.EnrichByMethod(payment, req); err != nil {
		return nil, err
	}
	if !s.AntiFraud.Approve(payment, req) {
		payment.Status = models.StatusDeclined
	}

	if err := s.Repo.Create(ctx, payment); err != nil {
		if key != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, getErr := s.Repo.GetByIdempotencyKey(ctx, *key, merchant.ID)
			if getErr != nil {
				return nil, fmt.Errorf("reading payment for idempotency key: %w", getErr)
			}
			return dto.NewPaymentView(existing), nil
		}
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(payment.Status)).Inc()
	metrics.PaymentAmounts.WithLabelValues(payment.Currency).Observe(payment.Amount)

	paymentID := payment.ID
	if err := s.Workers.Submit(func(ctx context.Context) {
		s.ProcessAndWebhook(ctx, paymentID)
	}); err != nil {
		logrus.WithError(err).WithField("payment_id", paymentID).Error("could not schedule settlement")
	}

	return dto.NewPaymentView(payment), nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentView, error) {
	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.NewPaymentView(payment), nil
}

// Refund marks the payment REFUNDED whatever its current status and notifies the
// merchant. The acknowledgment id is not tracked anywhere.
func (s *PaymentService) Refund(ctx context.Context, authorization, paymentID string) (*dto.RefundAck, error) {
	merchant, err := s.authorize(ctx, authorization)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(paymentID)
	payment, err := s.Repo.GetByID(ctx, paymentID)
	if err != nil {
		unlock()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if payment.MerchantID != merchant.ID {
		unlock()
		return nil, ErrForbidden
	}

	payment.Status = models.StatusRefunded
	payment.Touch(s.Now())
	err = s.Repo.Update(ctx, payment, payment.ID)
	unlock()
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(payment.Status)).Inc()
	s.publish(ctx, payment)

	if err := s.Workers.Submit(func(ctx context.Context) {
		if err := s.Webhooks.EnqueueDelivery(ctx, paymentID); err != nil {
			logrus.WithError(err).WithField("payment_id", paymentID).Error("could not enqueue refund webhook")
		}
	}); err != nil {
		logrus.WithError(err).WithField("payment_id", paymentID).Error("could not schedule refund webhook")
	}

	return &dto.RefundAck{
		ID:     "ref_" + uuid.New().String(),
		Status: string(models.StatusPending),
	}, nil
}

// ProcessAndWebhook is the settlement job. After the processing delay it draws the
// outcome, stores it and enqueues the webhook. A payment that vanished meanwhile is
// skipped. A DECLINED payment is settled like any other.
func (s *PaymentService) ProcessAndWebhook(ctx context.Context, paymentID string) {
	log := logrus.WithField("payment_id", paymentID)

	if s.Settlement.Delay > 0 {
		timer := time.NewTimer(s.Settlement.Delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			log.Warn("settlement cancelled before processing")
			return
		}
	}

	payment, ok := s.settle(ctx, paymentID, log)
	if !ok {
		return
	}

	log.WithField("status", payment.Status).Info("payment settled")
	metrics.PaymentsTotal.WithLabelValues(string(payment.Status)).Inc()
	s.publish(ctx, payment)

	if err := s.Webhooks.EnqueueDelivery(ctx, paymentID); err != nil {
		log.WithError(err).Error("could not enqueue webhook")
	}
}

func (s *PaymentService) settle(ctx context.Context, paymentID string, log *logrus.Entry) (*models.Payment, bool) {
	unlock := s.locks.Lock(paymentID)
	defer unlock()

	payment, err := s.Repo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("payment disappeared before settlement")
		} else {
			log.WithError(err).Error("could not load payment for settlement")
		}
		return nil, false
	}

	if s.Random() > s.Settlement.FailureRate {
		payment.Status = models.StatusApproved
	} else {
		payment.Status = models.StatusDeclined
	}
	payment.Touch(s.Now())

	if err := s.Repo.Update(ctx, payment, payment.ID); err != nil {
		log.WithError(err).Error("could not store settlement outcome")
		return nil, false
	}
	return payment, true
}

func (s *PaymentService) authorize(ctx context.Context, authorization string) (*models.Merchant, error) {
	merchantID, err := auth.MerchantID(authorization)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	merchant, err := s.Merchants.GetByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown merchant %s", ErrUnauthorized, merchantID)
		}
		return nil, fmt.Errorf("loading merchant: %w", err)
	}
	if !merchant.IsActive() {
		return nil, fmt.Errorf("%w: merchant %s is not active", ErrUnauthorized, merchantID)
	}
	return merchant, nil
}

func (s *PaymentService) publish(ctx context.Context, payment *models.Payment) {
	if s.Publisher == nil {
		return
	}
	event := models.NewPaymentUpdatedEvent(payment, s.Now())
	if err := s.Publisher.Publish(ctx, models.PaymentUpdatedEventTopic, payment.ID, event); err != nil {
		logrus.WithError(err).WithField("payment_id", payment.ID).Warn("could not publish payment update")
	}
}

// normalizeKey treats a blank Idempotency-Key header like a missing one.
func normalizeKey(key *string) *string {
	if key == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*key)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
