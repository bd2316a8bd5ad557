package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Request lifecycle events
const (
	EventRequestBooked       = "request.booked"
	EventRequestCreated      = "request.created"
	EventRequestStateChanged = "request.state_changed"
	EventRequestDeleted      = "request.deleted"

	eventSource = "hospital-booking-api"
)

// Event is the envelope written to the broker.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// EventPublisher announces committed changes to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data map[string]interface{}) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaEventPublisher struct {
	writer MessageWriter
	log    *logrus.Logger
}

func NewKafkaEventPublisher(writer MessageWriter, log *logrus.Logger) EventPublisher {
	return &kafkaEventPublisher{
		writer: writer,
		log:    log,
	}
}

// Publish writes one event keyed by key, so events about the same request
// land on the same partition in order.
func (p *kafkaEventPublisher) Publish(ctx context.Context, eventType string, key string, data map[string]interface{}) error {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    eventSource,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "source", Value: []byte(eventSource)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.log.WithError(err).WithFields(logrus.Fields{
			"event_id":   event.ID,
			"event_type": eventType,
		}).Error("Failed to publish event")
		return err
	}

	p.log.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": eventType,
		"key":        key,
	}).Debug("Event published")

	return nil
}

func (p *kafkaEventPublisher) Close() error {
	return p.writer.Close()
}

type noopEventPublisher struct {
	log *logrus.Logger
}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher(log *logrus.Logger) EventPublisher {
	return &noopEventPublisher{log: log}
}

func (p *noopEventPublisher) Publish(ctx context.Context, eventType string, key string, data map[string]interface{}) error {
	p.log.WithFields(logrus.Fields{
		"event_type": eventType,
		"key":        key,
	}).Debug("Event publishing disabled, dropping event")
	return nil
}

func (p *noopEventPublisher) Close() error {
	return nil
}
