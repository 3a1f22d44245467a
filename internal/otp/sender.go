package otp

import (
	"context"

	"github.com/careerclarity/careerclarity-api/internal/config"
)

// Sender dispatches a code to a phone number out-of-band. Delivery is
// fire-and-forget: callers log failures but never fail the request on them.
type Sender interface {
	Send(ctx context.Context, phone, code string) error
}

// LogSender writes the code to the log instead of an SMS gateway. Used in
// development and as the default until a gateway is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, phone, code string) error {
	config.WithContext(ctx).WithField("phone", phone).Info("otp dispatched")
	return nil
}
