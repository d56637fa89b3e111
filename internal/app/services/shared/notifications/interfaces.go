package notifications

import "context"

// NotificationMessage is what lands on the queue. The mailer service that
// consumes it owns templating and delivery.
type NotificationMessage struct {
	Type      string            `json:"type"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data,omitempty"`
}

type NotificationService interface {
	Publish(ctx context.Context, message *NotificationMessage) error
}
