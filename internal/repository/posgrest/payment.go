package posgrest

import (
	"context"

	"github.com/jeffleon2/fiadopay/internal/models"
	"gorm.io/gorm"
)

// PaymentRepository adds the idempotency lookup to the generic payment repository.
// Uniqueness of (merchant_id, idempotency_key) comes from the table index, so a
// concurrent duplicate Create fails with gorm.ErrDuplicatedKey.
type PaymentRepository struct {
	*repository[models.Payment]
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		repository: New[models.Payment](db),
	}
}

func (r *PaymentRepository) GetByIdempotencyKey(ctx context.Context, key, merchantID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ? AND merchant_id = ?", key, merchantID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Merchant{}, &models.Payment{}, &models.WebhookDelivery{})
}
