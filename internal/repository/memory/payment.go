package memory

import (
	"context"

	"github.com/jeffleon2/fiadopay/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	*store[models.Payment]
	idempotencyKeys map[string]string
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		store:           newStore(clonePayment),
		idempotencyKeys: make(map[string]string),
	}
}

func clonePayment(p models.Payment) models.Payment {
	if p.IdempotencyKey != nil {
		key := *p.IdempotencyKey
		p.IdempotencyKey = &key
	}
	if p.MonthlyInterest != nil {
		rate := *p.MonthlyInterest
		p.MonthlyInterest = &rate
	}
	return p
}

func idempotencyIndex(key, merchantID string) string {
	return merchantID + "\x00" + key
}

// Create stores the payment unless its id or its (merchant, idempotency key) pair is
// already taken, in which case gorm.ErrDuplicatedKey is returned.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = models.NewPaymentID()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)

	r.mu.Lock()
	defer r.mu.Unlock()

	var index string
	if p.IdempotencyKey != nil {
		index = idempotencyIndex(*p.IdempotencyKey, p.MerchantID)
		if _, taken := r.idempotencyKeys[index]; taken {
			return gorm.ErrDuplicatedKey
		}
	}
	if err := r.insert(p.ID, *p); err != nil {
		return err
	}
	if index != "" {
		r.idempotencyKeys[index] = p.ID
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.get(id)
}

func (r *PaymentRepository) GetByIdempotencyKey(ctx context.Context, key, merchantID string) (*models.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	id, ok := r.idempotencyKeys[idempotencyIndex(key, merchantID)]
	r.mu.RUnlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.get(id)
}

func (r *PaymentRepository) GetAll(ctx context.Context) (*[]models.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.all(), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.replace(id, *p)
}
