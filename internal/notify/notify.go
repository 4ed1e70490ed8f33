package notify

import "context"

// Notifier delivers one batched message per monitoring cycle.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}

// Multi fans a message out to every configured transport. It returns the
// first error but still attempts all of them.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, subject, body string) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, subject, body); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
