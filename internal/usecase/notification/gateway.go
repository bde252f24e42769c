package notification

import "context"

// Gateway delivers appointment events to customers. Implementations may fail;
// the dispatcher retries and never reports failures to the booking caller.
type Gateway interface {
	NotifyConfirmation(ctx context.Context, ev Event) error
	NotifyCancellation(ctx context.Context, ev Event) error
	NotifyReminder(ctx context.Context, ev Event) error
}

func Deliver(ctx context.Context, gw Gateway, ev Event) error {
	switch ev.Kind {
	case KindConfirmation:
		return gw.NotifyConfirmation(ctx, ev)
	case KindCancellation:
		return gw.NotifyCancellation(ctx, ev)
	case KindReminder:
		return gw.NotifyReminder(ctx, ev)
	}
	return ErrUnknownKind
}

// Waker is notified after a transaction that queued events has committed.
type Waker interface {
	Wake()
}

type NoopWaker struct{}

func (NoopWaker) Wake() {}
