package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/espressolab/storefront-backend/pkg/resend"
)

// Config carries the addresses and links the services render and dispatch with.
type Config struct {
	OrderFrom      string
	QCFrom         string
	AdminRecipient string
	PortalBaseURL  string
}

func (c Config) validateOrder() error {
	if strings.TrimSpace(c.OrderFrom) == "" {
		return fmt.Errorf("order sender address required")
	}
	if strings.TrimSpace(c.AdminRecipient) == "" {
		return fmt.Errorf("admin recipient required")
	}
	return nil
}

func (c Config) validateQC() error {
	if strings.TrimSpace(c.QCFrom) == "" {
		return fmt.Errorf("qc sender address required")
	}
	return nil
}

// Sender dispatches one email. *resend.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, msg resend.Message) (*resend.SendResult, error)
}

// Recorder observes handler runs and email dispatches. *metrics.NotificationMetrics satisfies it.
type Recorder interface {
	ObserveHandled(kind string, err error, duration time.Duration)
	ObserveEmail(role string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveHandled(string, error, time.Duration) {}
func (nopRecorder) ObserveEmail(string, error)                  {}

const (
	kindOrder = "order"
	kindQC    = "qc"

	roleCustomer = "customer"
	roleAdmin    = "admin"
)
