package notify

import (
	"context"
	"log/slog"
)

// LogNotifier records the notification instead of delivering it. Used when
// no SMTP transport is configured (local development).
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Notify(ctx context.Context, email, username string) error {
	n.Logger.Info("registration notification (smtp not configured)",
		"email", email,
		"username", username,
	)
	return nil
}
