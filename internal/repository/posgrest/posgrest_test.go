package posgrest_test

import (
	"context"
	"testing"

	"github.com/jeffleon2/fiadopay/config"
	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/jeffleon2/fiadopay/internal/repository/posgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openDB connects to the database described by the DB_* variables and skips the test
// when none is configured.
func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg, err := config.New()
	require.NoError(t, err)
	if cfg.DB.HOST == "" {
		t.Skip("DB_HOST not set, skipping postgres repository tests")
	}

	db, err := cfg.DB.GormConnect()
	require.NoError(t, err)
	require.NoError(t, posgrest.AutoMigrate(db))
	return db
}

func TestRepository_UpdateMissingRow(t *testing.T) {
	db := openDB(t)
	repo := posgrest.NewPaymentRepository(db)
	ctx := context.Background()

	payment := &models.Payment{ID: models.NewPaymentID(), MerchantID: "1", Method: "PIX", Amount: 10, Status: models.StatusPending}
	err := repo.Update(ctx, payment, payment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Create(ctx, payment))
	t.Cleanup(func() { db.Delete(&models.Payment{}, "id = ?", payment.ID) })

	payment.Status = models.StatusApproved
	require.NoError(t, repo.Update(ctx, payment, payment.ID))

	stored, err := repo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
}
