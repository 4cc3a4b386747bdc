package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jeffleon2/fiadopay/internal/models"
)

type WebhookDeliveryRepository struct {
	*store[models.WebhookDelivery]
}

func NewWebhookDeliveryRepository() *WebhookDeliveryRepository {
	return &WebhookDeliveryRepository{
		store: newStore(cloneDelivery),
	}
}

func cloneDelivery(d models.WebhookDelivery) models.WebhookDelivery {
	if d.LastAttemptAt != nil {
		at := *d.LastAttemptAt
		d.LastAttemptAt = &at
	}
	return d
}

func (r *WebhookDeliveryRepository) Create(ctx context.Context, d *models.WebhookDelivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	stamp(&d.CreatedAt, &d.UpdatedAt)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(d.ID, *d)
}

func (r *WebhookDeliveryRepository) GetByID(ctx context.Context, id string) (*models.WebhookDelivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.get(id)
}

func (r *WebhookDeliveryRepository) GetAll(ctx context.Context) (*[]models.WebhookDelivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.all(), nil
}

func (r *WebhookDeliveryRepository) Update(ctx context.Context, d *models.WebhookDelivery, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.replace(id, *d)
}
