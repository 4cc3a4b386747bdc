package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/fiadopay/config"
	"github.com/jeffleon2/fiadopay/internal/database"
	handlers "github.com/jeffleon2/fiadopay/internal/handlers"
	"github.com/jeffleon2/fiadopay/internal/metrics"
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/plugins"
	"github.com/jeffleon2/fiadopay/internal/publisher"
	"github.com/jeffleon2/fiadopay/internal/repository/memory"
	"github.com/jeffleon2/fiadopay/internal/repository/posgrest"
	"github.com/jeffleon2/fiadopay/internal/service"
	"github.com/jeffleon2/fiadopay/internal/webhook"
	"github.com/jeffleon2/fiadopay/internal/worker"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine

	server    *http.Server
	pool      *worker.Pool
	scheduler *worker.Scheduler
	publisher *publisher.KafkaPublisher
}

type repositories struct {
	payments   service.PaymentRepo
	merchants  database.MerchantStore
	deliveries webhook.DeliveryRepo
}

// Initialize builds every component and starts the background workers and the
// redelivery sweep. Requests are served once Run is called.
func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg

	repos, err := a.openRepositories()
	if err != nil {
		return err
	}

	if cfg.APP.IsLocal() || cfg.DB.DRIVER == config.DriverMemory {
		if err := database.SeedMerchants(context.Background(), repos.merchants, cfg.Webhook.SeedURL); err != nil {
			logrus.Warnf("failed to seed merchants: %v", err)
		}
	}

	a.pool = worker.NewPool("payments", cfg.Workers.PaymentWorkers, cfg.Workers.PaymentQueueSize)
	a.scheduler = worker.NewScheduler(cfg.Workers.SchedulerWorkers)

	var events service.Publisher
	if cfg.Kafka.Enabled() {
		a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, strings.Split(cfg.Kafka.PublishTopics, ","), cfg.Kafka.GetRetryConfig())
		events = a.publisher
	} else {
		logrus.Info("KAFKA_BROKERS not set, payment status events are not published")
	}

	dispatcher := webhook.NewDispatcher(repos.payments, repos.merchants, repos.deliveries, a.scheduler,
		webhook.NewClient(cfg.Webhook.Timeout), webhook.Config{
			Secret:            cfg.Webhook.Secret,
			SweepInitialDelay: cfg.Webhook.SweepInitialDelay,
			SweepPeriod:       cfg.Webhook.SweepPeriod,
		})

	paymentService := service.NewPaymentService(repos.payments, repos.merchants, plugins.Default(), a.pool, dispatcher, events,
		service.SettlementConfig{
			Delay:       cfg.Payment.ProcessingDelay(),
			FailureRate: cfg.Payment.FailureRate,
		})
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	metrics.RegisterMetrics()
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	dispatcher.StartRedeliveryJob()
	return nil
}

func (a *App) openRepositories() (*repositories, error) {
	if a.config.DB.DRIVER == config.DriverMemory {
		logrus.Warn("using in-memory storage, data is lost on restart")
		return &repositories{
			payments:   memory.NewPaymentRepository(),
			merchants:  memory.NewMerchantRepository(),
			deliveries: memory.NewWebhookDeliveryRepository(),
		}, nil
	}

	db, err := a.config.DB.GormConnect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := posgrest.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return &repositories{
		payments:   posgrest.NewPaymentRepository(db),
		merchants:  posgrest.New[models.Merchant](db),
		deliveries: posgrest.New[models.WebhookDelivery](db),
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%s", a.config.APP.PORT)
	a.server = &http.Server{Addr: addr, Handler: a.Router}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Join(err, a.Shutdown())
	case <-ctx.Done():
		logrus.Info("shutting down")
		return a.Shutdown()
	}
}

// Shutdown drains the HTTP server and the settlement pool before stopping the
// scheduler. Pending webhook timers are dropped; their records stay undelivered in
// storage for the next sweep.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.APP.ShutdownTimeout)
	defer cancel()

	var errs []error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}
	if err := a.pool.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.scheduler.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
