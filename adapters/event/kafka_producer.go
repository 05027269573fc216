package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/gan0622/DevForFun/internal/config"
)

const TopicProfileEvents = "profile.events"

const (
	ProfileEventTypeUpdated          = "profile.updated"
	ProfileEventTypeDeleted          = "profile.deleted"
	ProfileEventTypeExperienceChange = "profile.experience.changed"
	ProfileEventTypeEducationChange  = "profile.education.changed"
)

type ProfileEventPayload struct {
	EventType string    `json:"event_type"`
	OwnerID   uuid.UUID `json:"owner_id"`
	At        time.Time `json:"at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	if payload.At.IsZero() {
		payload.At = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile event failed: %w", err)
	}

	err = c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write profile event failed: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
