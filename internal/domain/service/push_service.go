package service

import (
	"context"
)

// PushService defines the interface for delivering reminder pushes when a
// notification is materialized. Delivery is best effort; a failure never
// affects the originating mutation.
type PushService interface {
	// SendReminder sends a push notification to a single device token.
	SendReminder(ctx context.Context, token, title, body string, data map[string]string) error
}
