package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Notifier sends a push notification to a user. Implementations are expected
// to be best-effort: callers fire them after the state mutation commits and
// never let a delivery failure fail the primary operation.
type Notifier interface {
	NotifyUser(ctx context.Context, userID string, title string, body string, data map[string]string) error
}

type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FCMNotifier pushes through Firebase Cloud Messaging, addressing users by
// their per-user topic. Outbound calls go through a circuit breaker so a
// degraded FCM cannot pile up request goroutines.
type FCMNotifier struct {
	client    *resty.Client
	breaker   *gobreaker.CircuitBreaker
	endpoint  string
	serverKey string
}

func NewFCMNotifier(endpoint string, serverKey string) *FCMNotifier {
	return &FCMNotifier{
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetRetryCount(0),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "fcm",
			MaxRequests: 3,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 5
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.WithFields(log.Fields{
					"circuit": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("Notifier circuit state changed")
			},
		}),
		endpoint:  endpoint,
		serverKey: serverKey,
	}
}

func (n *FCMNotifier) NotifyUser(ctx context.Context, userID string, title string, body string, data map[string]string) error {
	message := fcmMessage{
		To:           "/topics/user_" + userID,
		Notification: fcmNotification{Title: title, Body: body},
		Data:         data,
	}

	_, err := n.breaker.Execute(func() (interface{}, error) {
		resp, err := n.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "key="+n.serverKey).
			SetHeader("Content-Type", "application/json").
			SetBody(message).
			Post(n.endpoint)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= 300 {
			return nil, fmt.Errorf("fcm returned status %d", resp.StatusCode())
		}
		return nil, nil
	})
	return err
}

// NoopNotifier is used when no FCM credentials are configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyUser(_ context.Context, userID string, title string, _ string, _ map[string]string) error {
	log.WithFields(log.Fields{"userId": userID, "title": title}).Debug("Push notifications disabled, dropping message")
	return nil
}
