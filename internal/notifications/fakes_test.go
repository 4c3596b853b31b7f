package notifications

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/espressolab/storefront-backend/pkg/db/models"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/resend"
	"github.com/google/uuid"
)

type recordingSender struct {
	mu     sync.Mutex
	sent   []resend.Message
	sendFn func(msg resend.Message) error
}

func (r *recordingSender) Send(ctx context.Context, msg resend.Message) (*resend.SendResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendFn != nil {
		if err := r.sendFn(msg); err != nil {
			return nil, err
		}
	}
	r.sent = append(r.sent, msg)
	return &resend.SendResult{ID: "email_" + uuid.NewString()}, nil
}

func (r *recordingSender) messages() []resend.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]resend.Message(nil), r.sent...)
}

type fakeNotificationRepo struct {
	created  []models.Notification
	createFn func(n *models.Notification) error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if f.createFn != nil {
		if err := f.createFn(n); err != nil {
			return err
		}
	}
	f.created = append(f.created, *n)
	return nil
}

type fakeOrderReader struct {
	findFn func(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
}

func (f *fakeOrderReader) FindWithDetails(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return f.findFn(ctx, orderID)
}

type fakeReportReader struct {
	findFn func(ctx context.Context, reportID uuid.UUID) (*models.QCReport, error)
}

func (f *fakeReportReader) FindWithDetails(ctx context.Context, reportID uuid.UUID) (*models.QCReport, error) {
	return f.findFn(ctx, reportID)
}

type fakeRecorder struct {
	handled map[string][]error
	emails  map[string][]error
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{handled: map[string][]error{}, emails: map[string][]error{}}
}

func (f *fakeRecorder) ObserveHandled(kind string, err error, _ time.Duration) {
	f.handled[kind] = append(f.handled[kind], err)
}

func (f *fakeRecorder) ObserveEmail(role string, err error) {
	f.emails[role] = append(f.emails[role], err)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func testConfig() Config {
	return Config{
		OrderFrom:      "The Espresso Lab <orders@espressolab.com>",
		QCFrom:         "The Espresso Lab <qc@espressolab.com>",
		AdminRecipient: "admin@espressolab.com",
		PortalBaseURL:  "https://portal.espressolab.test",
	}
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
