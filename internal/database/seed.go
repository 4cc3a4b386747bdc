package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffleon2/fiadopay/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MerchantStore interface {
	Create(ctx context.Context, merchant *models.Merchant) error
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
}

// SeedMerchants creates the demo merchants that do not exist yet. Existing rows are
// left as they are.
func SeedMerchants(ctx context.Context, store MerchantStore, webhookURL string) error {
	merchants := []models.Merchant{
		{ID: "1", Name: "Loja Centro", Status: models.MerchantActive, WebhookURL: webhookURL},
		{ID: "2", Name: "Mercado Barra", Status: models.MerchantActive, WebhookURL: webhookURL},
		{ID: "3", Name: "Livraria Pelourinho", Status: models.MerchantInactive, WebhookURL: webhookURL},
	}

	created := 0
	for _, merchant := range merchants {
		_, err := store.GetByID(ctx, merchant.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("looking up merchant %s: %w", merchant.ID, err)
		}
		if err := store.Create(ctx, &merchant); err != nil {
			return fmt.Errorf("creating merchant %s: %w", merchant.ID, err)
		}
		created++
	}

	logrus.WithField("created", created).Info("merchants seeded successfully")
	return nil
}
