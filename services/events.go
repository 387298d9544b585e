package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"

	"github.com/kisahtegar/foodly-app-sub000/models"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderAssigned      = "order.assigned"
	EventOrderDelivered     = "order.delivered"
)

// OrderEvent is the lifecycle record published to the order-events topic.
// Downstream consumers (analytics, vendor dashboards) key on OrderID.
type OrderEvent struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	OrderID      string               `json:"orderId"`
	UserID       string               `json:"userId"`
	RestaurantID string               `json:"restaurantId"`
	DriverID     string               `json:"driverId,omitempty"`
	Status       models.OrderStatus   `json:"status"`
	Payment      models.PaymentStatus `json:"paymentStatus"`
	Timestamp    time.Time            `json:"timestamp"`
}

func NewOrderEvent(eventType string, order *models.Order) OrderEvent {
	event := OrderEvent{
		ID:           uuid.New().String(),
		Type:         eventType,
		OrderID:      order.OrderID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Status:       order.OrderStatus,
		Payment:      order.PaymentStatus,
		Timestamp:    time.Now(),
	}
	if order.DriverID != nil {
		event.DriverID = *order.DriverID
	}
	return event
}

type EventPublisher interface {
	Publish(event OrderEvent) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (EventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}
	return &kafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *kafkaPublisher) Publish(event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}
