package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/espressolab/storefront-backend/api/responses"
	"github.com/espressolab/storefront-backend/api/validators"
	"github.com/espressolab/storefront-backend/internal/notifications"
	"github.com/espressolab/storefront-backend/pkg/enums"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/types"
)

// OrderNotifier announces an order lifecycle event.
type OrderNotifier interface {
	Notify(ctx context.Context, req notifications.OrderRequest) (string, error)
}

// QCNotifier announces a completed QC report.
type QCNotifier interface {
	Notify(ctx context.Context, req notifications.QCRequest) (string, error)
}

// OrderNotificationBody is the trigger payload sent when an order changes state.
// Type is passed through untouched; unknown values still notify.
type OrderNotificationBody struct {
	OrderID string `json:"order_id" validate:"required,uuid_any"`
	Type    string `json:"type" validate:"max=64"`
}

type QCNotificationBody struct {
	ReportID string `json:"report_id" validate:"required,uuid_any"`
}

// OrderNotification emails the customer and the admin about an order and
// appends a notification record.
func OrderNotification(svc OrderNotifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionFailure(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order notifications unavailable"))
			return
		}

		var body OrderNotificationBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteFunctionFailure(r.Context(), logg, w, err)
			return
		}

		orderNumber, err := svc.Notify(r.Context(), notifications.OrderRequest{
			OrderID: uuid.MustParse(body.OrderID),
			Type:    enums.OrderEventType(body.Type),
		})
		if err != nil {
			responses.WriteFunctionFailure(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunction(w, types.OrderNotificationResult{
			Success:     true,
			OrderNumber: orderNumber,
		})
	}
}

// QCNotification emails the customer a completed QC report.
func QCNotification(svc QCNotifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionFailure(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "qc notifications unavailable"))
			return
		}

		var body QCNotificationBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteFunctionFailure(r.Context(), logg, w, err)
			return
		}

		reportID, err := svc.Notify(r.Context(), notifications.QCRequest{
			ReportID: uuid.MustParse(body.ReportID),
		})
		if err != nil {
			responses.WriteFunctionFailure(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunction(w, types.QCNotificationResult{
			Success:  true,
			ReportID: reportID,
		})
	}
}
