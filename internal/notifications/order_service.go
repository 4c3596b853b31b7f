package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/espressolab/storefront-backend/internal/emails"
	"github.com/espressolab/storefront-backend/internal/invoices"
	"github.com/espressolab/storefront-backend/pkg/db/models"
	"github.com/espressolab/storefront-backend/pkg/enums"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/resend"
	"github.com/google/uuid"
)

const orderRecordTitle = "Order Placed Successfully"

// OrderRequest identifies the order and the lifecycle event to announce.
type OrderRequest struct {
	OrderID uuid.UUID
	Type    enums.OrderEventType
}

type orderReader interface {
	FindWithDetails(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
}

// OrderServiceParams wires the order notifier.
type OrderServiceParams struct {
	Config        Config
	Orders        orderReader
	Notifications Repository
	Sender        Sender
	Invoices      invoices.Renderer
	Metrics       Recorder
	Logger        *logger.Logger
}

// OrderService emails the customer and the admin about an order and appends
// the audit record. Steps run sequentially and the first failure aborts.
type OrderService struct {
	cfg           Config
	orders        orderReader
	notifications Repository
	invoices      invoices.Renderer
	metrics       Recorder
	mailer        mailer
	logg          *logger.Logger
}

func NewOrderService(params OrderServiceParams) (*OrderService, error) {
	if params.Orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Notifications == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	if params.Sender == nil {
		return nil, fmt.Errorf("email sender required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := params.Config.validateOrder(); err != nil {
		return nil, err
	}
	renderer := params.Invoices
	if renderer == nil {
		renderer = invoices.HTMLRenderer{}
	}
	recorder := recorderOrNop(params.Metrics)
	return &OrderService{
		cfg:           params.Config,
		orders:        params.Orders,
		notifications: params.Notifications,
		invoices:      renderer,
		metrics:       recorder,
		mailer:        mailer{sender: params.Sender, metrics: recorder, logg: params.Logger},
		logg:          params.Logger,
	}, nil
}

// Notify runs the order notification and returns the order number.
func (s *OrderService) Notify(ctx context.Context, req OrderRequest) (string, error) {
	start := time.Now()
	ctx = s.logg.WithFields(ctx, map[string]any{
		"order_id":   req.OrderID.String(),
		"event_type": string(req.Type),
	})
	orderNumber, err := s.notify(ctx, req)
	s.metrics.ObserveHandled(kindOrder, err, time.Since(start))
	if err != nil {
		s.logg.Error(ctx, "order_notification.failed", err)
		return "", err
	}
	s.logg.Info(s.logg.WithField(ctx, "order_number", orderNumber), "order_notification.sent")
	return orderNumber, nil
}

func (s *OrderService) notify(ctx context.Context, req OrderRequest) (string, error) {
	if !req.Type.IsKnown() {
		s.logg.Warn(ctx, "order_notification.unknown_type")
	}

	order, err := s.orders.FindWithDetails(ctx, req.OrderID)
	if err != nil {
		return "", err
	}
	if order.Profile == nil || order.Profile.Email == "" {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "customer profile not found")
	}

	doc := emails.NewOrderDocument(order, s.cfg.PortalBaseURL)
	if !doc.TotalsConsistent() {
		// the stored total is still what both emails print
		s.logg.Warn(s.logg.WithFields(ctx, map[string]any{
			"total_amount": doc.TotalAmount.StringFixed(2),
			"subtotal":     doc.Subtotal.StringFixed(2),
			"tax":          doc.Tax.StringFixed(2),
			"shipping_fee": doc.ShippingFee.StringFixed(2),
		}), "order_notification.totals_mismatch")
	}
	invoiceHTML, err := emails.RenderInvoice(doc)
	if err != nil {
		return "", err
	}
	attachment, err := s.invoices.Render(ctx, invoiceHTML)
	if err != nil {
		return "", err
	}
	customerHTML, err := emails.RenderOrderCustomer(doc, req.Type)
	if err != nil {
		return "", err
	}
	adminHTML, err := emails.RenderOrderAdmin(doc)
	if err != nil {
		return "", err
	}

	if err := s.mailer.send(ctx, roleCustomer, resend.Message{
		From:    s.cfg.OrderFrom,
		To:      []string{order.Profile.Email},
		Subject: fmt.Sprintf("Order Confirmation - %s", order.OrderNumber),
		HTML:    customerHTML,
		Attachments: []resend.Attachment{{
			Filename: invoices.Filename(order.OrderNumber),
			Content:  attachment,
		}},
	}); err != nil {
		return "", err
	}

	// TODO(notifications): a failed admin send leaves the customer email delivered
	// with no record and a failed response. Decide with product whether to record
	// the customer send before attempting the admin email.
	if err := s.mailer.send(ctx, roleAdmin, resend.Message{
		From:    s.cfg.OrderFrom,
		To:      []string{s.cfg.AdminRecipient},
		Subject: fmt.Sprintf("New Order Received - %s", order.OrderNumber),
		HTML:    adminHTML,
	}); err != nil {
		return "", err
	}

	// TODO(notifications): the record is tagged order_placed for every event type,
	// including payment_confirmed and order_shipped. Needs product sign-off before
	// tagging by req.Type.
	record := &models.Notification{
		UserID:      order.UserID,
		Type:        enums.NotificationTypeOrderPlaced,
		Title:       orderRecordTitle,
		Message:     fmt.Sprintf("Your order %s has been placed successfully.", order.OrderNumber),
		ReferenceID: order.ID,
		EmailSent:   true,
	}
	if err := s.notifications.Create(ctx, record); err != nil {
		return "", err
	}
	return order.OrderNumber, nil
}
