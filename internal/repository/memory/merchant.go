package memory

import (
	"context"

	"github.com/jeffleon2/fiadopay/internal/models"
)

type MerchantRepository struct {
	*store[models.Merchant]
}

func NewMerchantRepository() *MerchantRepository {
	return &MerchantRepository{
		store: newStore(func(m models.Merchant) models.Merchant { return m }),
	}
}

func (r *MerchantRepository) Create(ctx context.Context, m *models.Merchant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stamp(&m.CreatedAt, &m.UpdatedAt)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(m.ID, *m)
}

func (r *MerchantRepository) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.get(id)
}

func (r *MerchantRepository) GetAll(ctx context.Context) (*[]models.Merchant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.all(), nil
}

func (r *MerchantRepository) Update(ctx context.Context, m *models.Merchant, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.replace(id, *m)
}
