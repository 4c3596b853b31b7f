package qc

import (
	"context"

	"github.com/espressolab/storefront-backend/internal/repo"
	"github.com/espressolab/storefront-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository reads QC report snapshots for notification rendering.
type Repository interface {
	FindWithDetails(ctx context.Context, reportID uuid.UUID) (*models.QCReport, error)
}

type repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

// FindWithDetails loads the report with its appointment and the appointment's
// customer profile, the parent order, and all answers in creation order.
func (r *repository) FindWithDetails(ctx context.Context, reportID uuid.UUID) (*models.QCReport, error) {
	var report models.QCReport
	err := r.DB(ctx).
		Preload("Appointment.Profile").
		Preload("Order", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "order_number")
		}).
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Where("id = ?", reportID).
		First(&report).Error
	if err != nil {
		return nil, repo.LookupError(err, "QC report not found", "load QC report")
	}
	return &report, nil
}
