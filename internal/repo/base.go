package repo

import (
	"context"

	"github.com/espressolab/storefront-backend/pkg/db"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Base is embedded by the snapshot repositories.
type Base struct {
	db *gorm.DB
}

func NewBase(conn *gorm.DB) Base {
	return Base{db: conn}
}

// DB returns the connection bound to ctx, or the raw connection for a nil ctx.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// LookupError classifies a single-row read failure: a missing row becomes
// CodeNotFound with notFoundMessage, anything else is a CodeDependency error.
func LookupError(err error, notFoundMessage, failureMessage string) error {
	if err == nil {
		return nil
	}
	if db.IsNotFound(err) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, failureMessage)
}
