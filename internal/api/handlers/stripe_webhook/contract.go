package stripe_webhook

import "context"

type OrdersService interface {
	MarkPaidBySession(ctx context.Context, sessionID, customerEmail string) error
	MarkCancelledBySession(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
