package service

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotifyDispatcherDeliversInBackground(t *testing.T) {
	notifier := &capturingNotifier{}
	d := NewNotifyDispatcher(notifier, slog.Default(), time.Second)
	d.Start()
	t.Cleanup(d.Stop)

	d.Enqueue("a@x.com", "alice")
	d.Enqueue("b@x.com", "bob")

	require.Eventually(t, func() bool {
		return len(notifier.deliveries()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, []string{"a@x.com", "b@x.com"}, notifier.deliveries())
}

func TestNotifyDispatcherEnqueueNeverBlocks(t *testing.T) {
	notifier := newBlockingNotifier()
	d := NewNotifyDispatcher(notifier, slog.Default(), 50*time.Millisecond)
	d.Start()
	t.Cleanup(d.Stop)

	// Flood well past the queue capacity while the worker is stuck. Every
	// Enqueue must return immediately; overflow is dropped, not blocked on.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			d.Enqueue("flood@x.com", "flood")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestNotifyDispatcherTimesOutSlowDeliveries(t *testing.T) {
	notifier := newBlockingNotifier()
	d := NewNotifyDispatcher(notifier, slog.Default(), 50*time.Millisecond)
	d.Start()

	d.Enqueue("a@x.com", "alice")

	select {
	case <-notifier.started:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}

	// The delivery context expires on its own, so Stop does not hang on the
	// blocked notifier.
	stopped := make(chan struct{})
	go func() {
		d.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on a slow delivery despite the timeout")
	}
}

func TestNotifyDispatcherStopDrainsQueue(t *testing.T) {
	notifier := &capturingNotifier{}
	d := NewNotifyDispatcher(notifier, slog.Default(), time.Second)
	d.Start()

	for i := 0; i < 10; i++ {
		d.Enqueue("a@x.com", "alice")
	}
	d.Stop()

	require.Len(t, notifier.deliveries(), 10, "queued notifications belong to registrations that already succeeded")
}

func TestNotifyDispatcherDefaultTimeout(t *testing.T) {
	d := NewNotifyDispatcher(&capturingNotifier{}, slog.Default(), 0)
	require.Equal(t, DefaultNotifyTimeout, d.Timeout)
}
