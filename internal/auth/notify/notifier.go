// Package notify delivers outbound user notifications. Delivery is always
// best-effort: the auth flow never waits on it and never fails because of it.
package notify

import "context"

// Notifier sends a "registration succeeded" notification to a destination
// address. Implementations must honour ctx cancellation so a slow channel
// cannot leak indefinite background work.
type Notifier interface {
	Notify(ctx context.Context, email, username string) error
}
