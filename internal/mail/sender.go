package mail

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a one-time code to an email address.
type Sender interface {
	SendOTP(ctx context.Context, email string, code string) error
}

// LogSender is the fallback used when no mail transport is configured: the
// code is written to the log instead of delivered.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (sender *LogSender) SendOTP(_ context.Context, email string, code string) error {
	sender.logger.Info("otp code issued without mail transport",
		zap.String("email", email),
		zap.String("code", code),
	)
	return nil
}
