package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Dispatcher fans order side effects out to the push notifier, the event
// broker and the websocket feed. Dispatch happens after the state mutation
// committed and is fire-and-forget: failures are logged and never propagate
// into the primary operation.
type Dispatcher struct {
	notifier Notifier
	events   EventPublisher
	hub      *Hub
}

func NewDispatcher(notifier Notifier, events EventPublisher, hub *Hub) *Dispatcher {
	return &Dispatcher{notifier: notifier, events: events, hub: hub}
}

func (d *Dispatcher) NotifyUser(userID string, title string, body string, data map[string]string) {
	if d == nil || d.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := d.notifier.NotifyUser(ctx, userID, title, body, data); err != nil {
			log.WithFields(log.Fields{"userId": userID, "title": title}).
				WithError(err).Warn("Push notification failed")
		}
	}()
}

func (d *Dispatcher) PublishEvent(event OrderEvent) {
	if d == nil || d.events == nil {
		return
	}
	go func() {
		if err := d.events.Publish(event); err != nil {
			log.WithFields(log.Fields{"orderId": event.OrderID, "type": event.Type}).
				WithError(err).Warn("Order event publish failed")
		}
	}()
}

func (d *Dispatcher) Broadcast(event string, payload interface{}) {
	if d == nil || d.hub == nil {
		return
	}
	d.hub.Broadcast(event, payload)
}
