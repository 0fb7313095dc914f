// Package notify delivers change notifications to external webhooks.
package notify

import (
	"context"
	"log/slog"
)

// Message represents a notification message.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Async fires a notification in the background, logging failures instead
// of surfacing them; notification delivery never blocks or fails a request.
func Async(n Notifier, msg Message) {
	if n == nil {
		return
	}
	go func() {
		if err := n.Send(context.Background(), msg); err != nil {
			slog.Error("notification failed", "title", msg.Title, "error", err)
		}
	}()
}
