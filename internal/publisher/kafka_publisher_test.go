package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/fiadopay/config"
	"github.com/stretchr/testify/assert"
)

func TestNewKafkaPublisher_Defaults(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092, localhost:9093", []string{"payments.updated"}, config.RetryConfig{})

	assert.Equal(t, 5, p.RetryConfig.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, p.RetryConfig.BaseDelay)
	assert.Equal(t, 10*time.Second, p.RetryConfig.MaxDelay)
	assert.Contains(t, p.Writers, "payments.updated")
	assert.NotNil(t, p.Writers["payments.updated"].Addr)
}

func TestCalculateBackoff(t *testing.T) {
	p := &KafkaPublisher{RetryConfig: config.RetryConfig{
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  time.Second,
	}}

	assert.Equal(t, 100*time.Millisecond, p.calculateBackoff(0))
	assert.Equal(t, 400*time.Millisecond, p.calculateBackoff(2))
	assert.Equal(t, time.Second, p.calculateBackoff(6))
}

func TestCalculateBackoff_JitterStaysInBand(t *testing.T) {
	p := &KafkaPublisher{RetryConfig: config.RetryConfig{
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  time.Second,
		Jitter:    true,
	}}

	for i := 0; i < 50; i++ {
		d := p.calculateBackoff(1)
		assert.GreaterOrEqual(t, d, 170*time.Millisecond)
		assert.LessOrEqual(t, d, 230*time.Millisecond)
	}
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", []string{"payments.updated"}, config.RetryConfig{})

	err := p.Publish(context.Background(), "wallet.events", "pay_1", map[string]string{"a": "b"})
	assert.ErrorContains(t, err, "no writer configured")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a:1", "b:2"}, splitList(" a:1 ,,b:2 "))
	assert.Nil(t, splitList(""))
}
