package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/espressolab/storefront-backend/internal/emails"
	"github.com/espressolab/storefront-backend/pkg/db/models"
	"github.com/espressolab/storefront-backend/pkg/enums"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/resend"
	"github.com/google/uuid"
)

// QCRequest identifies the completed inspection report.
type QCRequest struct {
	ReportID uuid.UUID
}

type reportReader interface {
	FindWithDetails(ctx context.Context, reportID uuid.UUID) (*models.QCReport, error)
}

// QCServiceParams wires the QC notifier.
type QCServiceParams struct {
	Config        Config
	Reports       reportReader
	Notifications Repository
	Sender        Sender
	Metrics       Recorder
	Logger        *logger.Logger
}

// QCService emails the inspected customer their report and appends the audit record.
type QCService struct {
	cfg           Config
	reports       reportReader
	notifications Repository
	metrics       Recorder
	mailer        mailer
	logg          *logger.Logger
}

func NewQCService(params QCServiceParams) (*QCService, error) {
	if params.Reports == nil {
		return nil, fmt.Errorf("qc reports repository required")
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
	if err := params.Config.validateQC(); err != nil {
		return nil, err
	}
	recorder := recorderOrNop(params.Metrics)
	return &QCService{
		cfg:           params.Config,
		reports:       params.Reports,
		notifications: params.Notifications,
		metrics:       recorder,
		mailer:        mailer{sender: params.Sender, metrics: recorder, logg: params.Logger},
		logg:          params.Logger,
	}, nil
}

// Notify runs the QC notification and returns the report id.
func (s *QCService) Notify(ctx context.Context, req QCRequest) (string, error) {
	start := time.Now()
	ctx = s.logg.WithField(ctx, "report_id", req.ReportID.String())
	reportID, err := s.notify(ctx, req)
	s.metrics.ObserveHandled(kindQC, err, time.Since(start))
	if err != nil {
		s.logg.Error(ctx, "qc_notification.failed", err)
		return "", err
	}
	s.logg.Info(ctx, "qc_notification.sent")
	return reportID, nil
}

func (s *QCService) notify(ctx context.Context, req QCRequest) (string, error) {
	report, err := s.reports.FindWithDetails(ctx, req.ReportID)
	if err != nil {
		return "", err
	}
	if report.Appointment == nil || report.Appointment.Profile == nil || report.Appointment.Profile.Email == "" {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "customer profile not found")
	}
	orderNumber := ""
	if report.Order != nil {
		orderNumber = report.Order.OrderNumber
	}

	html, err := emails.RenderQCReport(emails.NewQCDocument(report, s.cfg.PortalBaseURL))
	if err != nil {
		return "", err
	}

	if err := s.mailer.send(ctx, roleCustomer, resend.Message{
		From:    s.cfg.QCFrom,
		To:      []string{report.Appointment.Profile.Email},
		Subject: fmt.Sprintf("QC Report Ready - Order %s", orderNumber),
		HTML:    html,
	}); err != nil {
		return "", err
	}

	userID := report.Appointment.UserID
	record := &models.Notification{
		UserID:      &userID,
		Type:        enums.NotificationTypeQCCompleted,
		Title:       "QC Report Completed",
		Message:     fmt.Sprintf("Your QC report for order %s is ready to view.", orderNumber),
		ReferenceID: report.ID,
		EmailSent:   true,
	}
	if err := s.notifications.Create(ctx, record); err != nil {
		return "", err
	}
	return report.ID.String(), nil
}
