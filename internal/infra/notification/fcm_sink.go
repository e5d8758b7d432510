// Package notification provides NotificationSink implementations.
package notification

import (
	"context"

	"zonewatch/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmSink struct {
	client      *messaging.Client
	deviceToken string
}

// NewFCMSink creates a Firebase Cloud Messaging notification sink targeting
// this device's app shell. The shell renders Deliver pushes as local
// notifications tagged with the handle, and cancels the tagged notification
// when it receives a dismiss data message.
func NewFCMSink(ctx context.Context, credentialsPath, deviceToken string) (service.NotificationSink, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &fcmSink{
		client:      client,
		deviceToken: deviceToken,
	}, nil
}

func (s *fcmSink) Deliver(ctx context.Context, title, body string, data map[string]string) (string, error) {
	handle := uuid.NewString()

	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["tag"] = handle

	message := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return "", errors.Wrap(err, "send notification")
	}

	return handle, nil
}

func (s *fcmSink) Dismiss(ctx context.Context, handle string) error {
	// Data-only message; the shell cancels the notification with this tag.
	message := &messaging.Message{
		Token: s.deviceToken,
		Data: map[string]string{
			"action": "dismiss",
			"tag":    handle,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "send dismiss message")
	}

	return nil
}
