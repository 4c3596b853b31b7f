package notifications

import (
	"context"

	"github.com/espressolab/storefront-backend/pkg/db/models"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository appends notification audit rows. Rows are never updated here.
type Repository interface {
	Create(ctx context.Context, notification *models.Notification) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a notifications repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record notification")
	}
	return nil
}
