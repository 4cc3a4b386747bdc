package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/fiadopay/internal/lock"
	"github.com/jeffleon2/fiadopay/internal/metrics"
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/worker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxBackoffSteps = 30

var (
	ErrDeliveryRejected = errors.New("webhook rejected by receiver")
	ErrDeliveryNotFound = errors.New("webhook delivery not found")
)

type PaymentRepo interface {
	GetByID(ctx context.Context, id string) (*models.Payment, error)
}

type MerchantRepo interface {
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
}

type DeliveryRepo interface {
	Create(ctx context.Context, delivery *models.WebhookDelivery) error
	GetByID(ctx context.Context, id string) (*models.WebhookDelivery, error)
	GetAll(ctx context.Context) (*[]models.WebhookDelivery, error)
	Update(ctx context.Context, delivery *models.WebhookDelivery, id string) error
}

// Scheduler arms timers for delivery attempts and runs the periodic sweep.
type Scheduler interface {
	Schedule(delay time.Duration, task worker.Task) bool
	Every(initialDelay, period time.Duration, task worker.Task) bool
}

// Sender performs one outbound webhook call.
type Sender interface {
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (int, error)
}

type Config struct {
	Secret string

	// BackoffUnit is the length of one backoff step, one second in production.
	BackoffUnit       time.Duration
	SweepInitialDelay time.Duration
	SweepPeriod       time.Duration
}

// Dispatcher delivers payment notifications at least once. Failed attempts are retried
// with capped exponential backoff and a periodic sweep re-arms every delivery that is
// still pending. Attempts on the same delivery never overlap.
type Dispatcher struct {
	Payments   PaymentRepo
	Merchants  MerchantRepo
	Deliveries DeliveryRepo
	Scheduler  Scheduler
	Sender     Sender
	Config     Config
	Now        func() time.Time

	locks lock.Table
}

func NewDispatcher(payments PaymentRepo, merchants MerchantRepo, deliveries DeliveryRepo, scheduler Scheduler, sender Sender, cfg Config) *Dispatcher {
	if cfg.BackoffUnit <= 0 {
		cfg.BackoffUnit = time.Second
	}
	return &Dispatcher{
		Payments:   payments,
		Merchants:  merchants,
		Deliveries: deliveries,
		Scheduler:  scheduler,
		Sender:     sender,
		Config:     cfg,
		Now:        time.Now,
	}
}

// EnqueueDelivery records a payment.updated event for the payment and schedules its
// first attempt. Merchants without a webhook URL get no delivery.
func (d *Dispatcher) EnqueueDelivery(ctx context.Context, paymentID string) error {
	payment, err := d.Payments.GetByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("loading payment %s: %w", paymentID, err)
	}
	merchant, err := d.Merchants.GetByID(ctx, payment.MerchantID)
	if err != nil {
		return fmt.Errorf("loading merchant %s: %w", payment.MerchantID, err)
	}
	if merchant.WebhookURL == "" {
		logrus.WithFields(logrus.Fields{"payment_id": paymentID, "merchant_id": merchant.ID}).
			Info("merchant has no webhook url, skipping notification")
		return nil
	}

	delivery := &models.WebhookDelivery{
		EventID:   models.EventIDFor(payment.ID),
		EventType: models.EventPaymentUpdated,
		PaymentID: payment.ID,
		TargetURL: merchant.WebhookURL,
	}
	if err := d.Deliveries.Create(ctx, delivery); err != nil {
		return fmt.Errorf("creating delivery: %w", err)
	}

	d.ScheduleTryDeliver(delivery.ID, 0)
	return nil
}

// ScheduleTryDeliver arms one attempt after the backoff for attempt. A failed attempt
// schedules the next step until the delivery record is delivered or gone. A missing
// payment or merchant is an ordinary failure and keeps the chain going. Timers dropped at
// shutdown are picked up by the next sweep.
func (d *Dispatcher) ScheduleTryDeliver(deliveryID string, attempt int) {
	log := logrus.WithFields(logrus.Fields{"delivery_id": deliveryID, "attempt": attempt})

	scheduled := d.Scheduler.Schedule(d.backoff(attempt), func(ctx context.Context) {
		err := d.TryDeliver(ctx, deliveryID)
		switch {
		case err == nil:
			return
		case errors.Is(err, ErrDeliveryNotFound):
			log.WithError(err).Error("delivery record is gone, giving up")
			return
		case ctx.Err() != nil:
			log.Warn("shutting down, delivery left for the next sweep")
			return
		}

		log.WithError(err).Warn("webhook attempt failed, rescheduling")
		d.ScheduleTryDeliver(deliveryID, attempt+1)
	})
	if !scheduled {
		log.Debug("scheduler stopped, delivery left for the next sweep")
	}
}

// TryDeliver performs one attempt. A delivered record is left untouched. Every attempt
// that reaches the network is recorded, with its signature and payload, before the
// outcome is reported.
func (d *Dispatcher) TryDeliver(ctx context.Context, deliveryID string) error {
	unlock := d.locks.Lock(deliveryID)
	defer unlock()

	delivery, err := d.Deliveries.GetByID(ctx, deliveryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrDeliveryNotFound, deliveryID)
	}
	if err != nil {
		return fmt.Errorf("loading delivery: %w", err)
	}
	if delivery.Delivered {
		return nil
	}

	payment, err := d.Payments.GetByID(ctx, delivery.PaymentID)
	if err != nil {
		return fmt.Errorf("loading payment %s: %w", delivery.PaymentID, err)
	}
	merchant, err := d.Merchants.GetByID(ctx, payment.MerchantID)
	if err != nil {
		return fmt.Errorf("loading merchant %s: %w", payment.MerchantID, err)
	}

	body, err := json.Marshal(models.WebhookNotification{
		PaymentID:  payment.ID,
		Status:     string(payment.Status),
		Amount:     payment.Amount,
		MerchantID: payment.MerchantID,
		OccurredAt: d.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}
	signature := Sign(d.Config.Secret, body)

	status, sendErr := d.Sender.Post(ctx, merchant.WebhookURL, map[string]string{
		HeaderEventType: delivery.EventType,
		HeaderSignature: signature,
	}, body)

	now := d.Now()
	delivery.Attempts++
	delivery.LastAttemptAt = &now
	delivery.Signature = signature
	delivery.Payload = string(body)
	delivery.TargetURL = merchant.WebhookURL
	delivery.Delivered = sendErr == nil && status >= 200 && status < 300

	if err := d.Deliveries.Update(ctx, delivery, delivery.ID); err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}

	switch {
	case sendErr != nil:
		metrics.WebhookAttemptsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("posting to %s: %w", merchant.WebhookURL, sendErr)
	case !delivery.Delivered:
		metrics.WebhookAttemptsTotal.WithLabelValues("rejected").Inc()
		return fmt.Errorf("%w: status %d", ErrDeliveryRejected, status)
	}

	metrics.WebhookAttemptsTotal.WithLabelValues("delivered").Inc()
	logrus.WithFields(logrus.Fields{
		"delivery_id": delivery.ID,
		"event_id":    delivery.EventID,
		"attempts":    delivery.Attempts,
	}).Info("webhook delivered")
	return nil
}

// Sweep re-arms every undelivered record, starting from its current attempt count,
// and returns how many were re-armed. A record may end up with more than one timer.
func (d *Dispatcher) Sweep(ctx context.Context) (int, error) {
	deliveries, err := d.Deliveries.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing deliveries: %w", err)
	}

	rearmed := 0
	for _, delivery := range *deliveries {
		if delivery.Delivered {
			continue
		}
		d.ScheduleTryDeliver(delivery.ID, delivery.Attempts)
		metrics.WebhookRedeliveriesTotal.Inc()
		rearmed++
	}
	return rearmed, nil
}

func (d *Dispatcher) StartRedeliveryJob() {
	started := d.Scheduler.Every(d.Config.SweepInitialDelay, d.Config.SweepPeriod, func(ctx context.Context) {
		n, err := d.Sweep(ctx)
		if err != nil {
			logrus.WithError(err).Error("redelivery sweep failed")
			return
		}
		if n > 0 {
			logrus.WithField("rearmed", n).Info("redelivery sweep re-armed pending webhooks")
		}
	})
	if !started {
		logrus.WithField("period", d.Config.SweepPeriod).Error("redelivery sweep not started")
	}
}

// backoff is min(30, 2^max(0, attempt)) steps.
func (d *Dispatcher) backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	steps := maxBackoffSteps
	if attempt < 5 {
		steps = min(maxBackoffSteps, 1<<attempt)
	}
	return time.Duration(steps) * d.Config.BackoffUnit
}
