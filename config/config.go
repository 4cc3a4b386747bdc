package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}
	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := Config.Payment.Validate(); err != nil {
		return nil, err
	}
	if err := Config.Webhook.Validate(); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Payment
	Webhook
	Workers
}

type APP struct {
	PORT            string        `env:"APP_PORT" envDefault:"8080"`
	ENV             string        `env:"GO_ENV" envDefault:"production"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// IsLocal reports whether the process runs with local development settings.
func (a APP) IsLocal() bool {
	return a.ENV == "local"
}

type DB struct {
	DRIVER   string `env:"DB_DRIVER" envDefault:"postgres"`
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

const DriverMemory = "memory"

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.updated"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Enabled reports whether a broker list was configured.
func (k Kafka) Enabled() bool {
	return k.Brokers != ""
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Payment holds the settlement simulation knobs.
type Payment struct {
	ProcessingDelayMS int64   `env:"FIADOPAY_PROCESSING_DELAY_MS" envDefault:"1500"`
	FailureRate       float64 `env:"FIADOPAY_FAILURE_RATE" envDefault:"0.15"`
}

func (p Payment) ProcessingDelay() time.Duration {
	if p.ProcessingDelayMS < 0 {
		return 0
	}
	return time.Duration(p.ProcessingDelayMS) * time.Millisecond
}

func (p Payment) Validate() error {
	if p.FailureRate < 0 || p.FailureRate > 1 {
		return fmt.Errorf("FIADOPAY_FAILURE_RATE must be between 0 and 1, got %v", p.FailureRate)
	}
	return nil
}

type Webhook struct {
	Secret            string        `env:"FIADOPAY_WEBHOOK_SECRET" envDefault:"ucsal-2025"`
	Timeout           time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	SweepInitialDelay time.Duration `env:"WEBHOOK_SWEEP_INITIAL_DELAY" envDefault:"10s"`
	SweepPeriod       time.Duration `env:"WEBHOOK_SWEEP_PERIOD" envDefault:"60s"`

	// SeedURL is the webhook target given to the merchants created by the local seed.
	SeedURL string `env:"FIADOPAY_SEED_WEBHOOK_URL" envDefault:"http://localhost:8081/webhooks/fiadopay"`
}

func (w Webhook) Validate() error {
	if w.SweepPeriod <= 0 {
		return fmt.Errorf("WEBHOOK_SWEEP_PERIOD must be positive, got %v", w.SweepPeriod)
	}
	if w.SweepInitialDelay < 0 {
		return fmt.Errorf("WEBHOOK_SWEEP_INITIAL_DELAY must not be negative, got %v", w.SweepInitialDelay)
	}
	return nil
}

type Workers struct {
	PaymentWorkers   int `env:"PAYMENT_WORKERS" envDefault:"4"`
	PaymentQueueSize int `env:"PAYMENT_QUEUE_SIZE" envDefault:"256"`
	SchedulerWorkers int `env:"SCHEDULER_WORKERS" envDefault:"3"`
}
