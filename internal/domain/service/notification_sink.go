// Package service defines external capability contracts consumed by the core.
package service

import "context"

// NotificationSink delivers and dismisses user-visible notifications.
// Implementations own all channel/permission mechanics.
type NotificationSink interface {
	// Deliver shows a notification and returns an opaque handle that can
	// later be passed to Dismiss.
	Deliver(ctx context.Context, title, body string, data map[string]string) (handle string, err error)

	// Dismiss removes a previously delivered notification.
	Dismiss(ctx context.Context, handle string) error
}
