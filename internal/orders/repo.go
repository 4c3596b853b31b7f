package orders

import (
	"context"

	"github.com/espressolab/storefront-backend/internal/repo"
	"github.com/espressolab/storefront-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository reads order snapshots for notification rendering.
type Repository interface {
	FindWithDetails(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

// FindWithDetails loads the order with its owning profile and line items.
// A missing order yields a CodeNotFound error.
func (r *repository) FindWithDetails(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Profile").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, repo.LookupError(err, "order not found", "load order")
	}
	return &order, nil
}
