package notifications

import (
	"context"

	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/resend"
)

type mailer struct {
	sender  Sender
	metrics Recorder
	logg    *logger.Logger
}

// send dispatches exactly once. Errors are returned as-is for the caller to abort on.
func (m mailer) send(ctx context.Context, role string, msg resend.Message) error {
	result, err := m.sender.Send(ctx, msg)
	m.metrics.ObserveEmail(role, err)
	if err != nil {
		return err
	}
	fields := map[string]any{"recipient_role": role}
	if result != nil && result.ID != "" {
		fields["email_id"] = result.ID
	}
	m.logg.Info(m.logg.WithFields(ctx, fields), "email.sent")
	return nil
}

func recorderOrNop(recorder Recorder) Recorder {
	if recorder == nil {
		return nopRecorder{}
	}
	return recorder
}
