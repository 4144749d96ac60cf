package services

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type fcmPushSender struct {
	client *messaging.Client
}

// NewFCMPushSender initializes a Firebase Cloud Messaging client from a
// service-account credentials file.
func NewFCMPushSender(ctx context.Context, credentialsFile string) (PushSender, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("missing FCM credentials file")
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase app init: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging init: %w", err)
	}
	return &fcmPushSender{client: client}, nil
}

func (s *fcmPushSender) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	_, err := s.client.Send(ctx, msg)
	return err
}

// noopPushSender stands in when push credentials are not configured; sends
// are logged and dropped.
type noopPushSender struct {
	logger *zap.Logger
}

func NewNoopPushSender(logger *zap.Logger) PushSender {
	return &noopPushSender{logger: logger}
}

func (s *noopPushSender) SendPush(_ context.Context, token, title, body string, _ map[string]string) error {
	s.logger.Debug("push sender not configured, dropping message",
		zap.String("title", title))
	return nil
}
