package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/authsystem/authd/internal/auth/notify"
)

// DefaultNotifyTimeout bounds a single notification delivery so a slow
// transport cannot leak indefinite background work.
const DefaultNotifyTimeout = 30 * time.Second

type notification struct {
	Email    string
	Username string
}

// NotifyDispatcher decouples notification delivery from the request path.
// Registration enqueues onto a bounded queue and returns immediately; a
// background worker drains the queue, and delivery failures are logged,
// never propagated.
type NotifyDispatcher struct {
	Notifier notify.Notifier
	Logger   *slog.Logger
	Timeout  time.Duration

	queue  chan notification
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewNotifyDispatcher creates a dispatcher with the given per-send timeout.
// If timeout is 0 or negative, DefaultNotifyTimeout is used.
func NewNotifyDispatcher(n notify.Notifier, logger *slog.Logger, timeout time.Duration) *NotifyDispatcher {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}

	return &NotifyDispatcher{
		Notifier: n,
		Logger:   logger,
		Timeout:  timeout,
		queue:    make(chan notification, 64),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut down.
func (d *NotifyDispatcher) Start() {
	go d.run()
	d.Logger.Info("notify dispatcher started", "timeout", d.Timeout)
}

// Stop gracefully shuts down the worker. Queued notifications are still
// delivered before Stop returns; registrations they belong to have already
// succeeded.
func (d *NotifyDispatcher) Stop() {
	close(d.stopCh)
	<-d.doneCh
	d.Logger.Info("notify dispatcher stopped")
}

// Enqueue hands a notification to the worker without blocking. If the queue
// is full the notification is dropped and logged; it must never stall a
// registration response.
func (d *NotifyDispatcher) Enqueue(email, username string) {
	select {
	case d.queue <- notification{Email: email, Username: username}:
	default:
		d.Logger.Warn("notification queue full, dropping", "email", email)
	}
}

// run is the main background worker loop.
func (d *NotifyDispatcher) run() {
	defer close(d.doneCh)

	for {
		select {
		case n := <-d.queue:
			d.send(n)
		case <-d.stopCh:
			d.drain()
			return
		}
	}
}

// drain delivers whatever is still queued at shutdown.
func (d *NotifyDispatcher) drain() {
	for {
		select {
		case n := <-d.queue:
			d.send(n)
		default:
			return
		}
	}
}

// send delivers one notification with a bounded lifetime. The context is
// rooted at Background: delivery is decoupled from any request.
func (d *NotifyDispatcher) send(n notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	if err := d.Notifier.Notify(ctx, n.Email, n.Username); err != nil {
		// Observability only. The registration already succeeded.
		d.Logger.Error("failed to send registration notification",
			"email", n.Email,
			"error", err,
		)
		return
	}

	d.Logger.Debug("registration notification sent", "email", n.Email)
}
