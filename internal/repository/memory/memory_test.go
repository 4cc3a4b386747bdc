package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func key(s string) *string { return &s }

func TestPaymentRepository_CreateAndGet(t *testing.T) {
	repo := memory.NewPaymentRepository()
	ctx := context.Background()

	p := &models.Payment{ID: "pay_1", MerchantID: "1", Amount: 10, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Amount)

	got.Amount = 99
	again, err := repo.GetByID(ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, again.Amount, "callers must not share memory with the store")
}

func TestPaymentRepository_NotFound(t *testing.T) {
	repo := memory.NewPaymentRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Update(context.Background(), &models.Payment{ID: "missing"}, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPaymentRepository_IdempotencyKeyIsUniquePerMerchant(t *testing.T) {
	repo := memory.NewPaymentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Payment{ID: "pay_a", MerchantID: "1", IdempotencyKey: key("k1")}))
	require.NoError(t, repo.Create(ctx, &models.Payment{ID: "pay_b", MerchantID: "2", IdempotencyKey: key("k1")}))
	require.NoError(t, repo.Create(ctx, &models.Payment{ID: "pay_c", MerchantID: "1"}))
	require.NoError(t, repo.Create(ctx, &models.Payment{ID: "pay_d", MerchantID: "1"}))

	err := repo.Create(ctx, &models.Payment{ID: "pay_e", MerchantID: "1", IdempotencyKey: key("k1")})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	found, err := repo.GetByIdempotencyKey(ctx, "k1", "2")
	require.NoError(t, err)
	assert.Equal(t, "pay_b", found.ID)

	_, err = repo.GetByIdempotencyKey(ctx, "k2", "1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPaymentRepository_ConcurrentDuplicateKeys(t *testing.T) {
	repo := memory.NewPaymentRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, &models.Payment{MerchantID: "1", IdempotencyKey: key("same")})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, *all, 1)
}

func TestWebhookDeliveryRepository_AssignsIDAndKeepsOrder(t *testing.T) {
	repo := memory.NewWebhookDeliveryRepository()
	ctx := context.Background()

	first := &models.WebhookDelivery{EventID: "evt_1", PaymentID: "pay_1"}
	second := &models.WebhookDelivery{EventID: "evt_2", PaymentID: "pay_2"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEmpty(t, first.ID)

	first.Attempts = 2
	first.Delivered = true
	require.NoError(t, repo.Update(ctx, first, first.ID))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, *all, 2)
	assert.Equal(t, "evt_1", (*all)[0].EventID)
	assert.True(t, (*all)[0].Delivered)
	assert.Equal(t, 2, (*all)[0].Attempts)
	assert.False(t, (*all)[1].Delivered)
}

func TestMerchantRepository_DuplicateID(t *testing.T) {
	repo := memory.NewMerchantRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Merchant{ID: "1", Name: "Acme", Status: models.MerchantActive}))
	err := repo.Create(ctx, &models.Merchant{ID: "1", Name: "Other"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	m, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", m.Name)
}
