// Package push delivers notifications through Firebase Cloud Messaging.
package push

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/limbo/streakmate/pkg/entity"
)

var ErrNoCredentials = errors.New("no firebase credentials provided")

// Credentials are looked up in order: base64 encoded service account JSON,
// then a key file on disk.
type Credentials struct {
	EncodedJSON string
	File        string
}

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type FCMSender struct {
	client  messagingClient
	isStale func(error) bool
	logger  *slog.Logger
}

func NewFCMSender(ctx context.Context, creds Credentials) (*FCMSender, error) {
	opt, err := clientOption(creds)
	if err != nil {
		return nil, err
	}
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}
	return newFCMSender(client), nil
}

func newFCMSender(client messagingClient) *FCMSender {
	return &FCMSender{
		client:  client,
		isStale: messaging.IsUnregistered,
		logger:  slog.Default().With(slog.String("component", "fcm")),
	}
}

func clientOption(creds Credentials) (option.ClientOption, error) {
	if creds.EncodedJSON != "" {
		decoded, err := base64.StdEncoding.DecodeString(creds.EncodedJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 firebase credentials: %w", err)
		}
		return option.WithCredentialsJSON(decoded), nil
	}
	if creds.File == "" {
		return nil, ErrNoCredentials
	}
	if _, err := os.Stat(creds.File); err != nil {
		return nil, fmt.Errorf("firebase credentials file: %w", err)
	}
	return option.WithCredentialsFile(creds.File), nil
}

// Send pushes msg to every token one by one and returns the tokens FCM
// reported as unregistered. An error is returned only when no token
// accepted the message for a reason other than being stale.
func (s *FCMSender) Send(ctx context.Context, tokens []string, msg *entity.PushMessage) ([]string, error) {
	var (
		stale   []string
		sent    int
		lastErr error
	)
	for _, token := range tokens {
		_, err := s.client.Send(ctx, buildMessage(token, msg))
		switch {
		case err == nil:
			sent++
		case s.isStale(err):
			stale = append(stale, token)
		default:
			lastErr = err
			s.logger.Warn("fcm send failed", slog.String("error", err.Error()))
		}
	}
	s.logger.Debug("fcm batch done",
		slog.Int("sent", sent),
		slog.Int("stale", len(stale)),
	)
	if sent == 0 && lastErr != nil {
		return stale, fmt.Errorf("all push notifications failed: %w", lastErr)
	}
	return stale, nil
}

func buildMessage(token string, msg *entity.PushMessage) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"Urgency": "high"},
			Notification: &messaging.WebpushNotification{
				Title: msg.Title,
				Body:  msg.Body,
				Tag:   msg.Data["type"],
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
	}
}
