// Package kafka publishes room state transitions onto the inter-service
// event bus. Publishing is strictly fire-and-forget: consumers such as the
// chat service observe transitions, but a broker outage must never affect
// the in-room broadcast path.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Envelope is the bus message schema, keyed by "<type>:<roomCode>".
type Envelope struct {
	Type      string    `json:"type"`
	RoomCode  string    `json:"roomCode"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
		},
	}
}

// Publish writes the event asynchronously. Failures are logged and
// swallowed.
func (p *Publisher) Publish(ctx context.Context, eventType, roomCode string, payload any) {
	env := Envelope{
		Type:      eventType,
		RoomCode:  roomCode,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		zap.L().Error("Failed to marshal bus event",
			zap.String("type", eventType), zap.String("room", roomCode), zap.Error(err))
		return
	}

	go func() {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		msg := kafka.Message{
			Key:   []byte(eventType + ":" + roomCode),
			Value: data,
		}
		if err := p.writer.WriteMessages(wctx, msg); err != nil {
			zap.L().Warn("Bus publish failed",
				zap.String("type", eventType), zap.String("room", roomCode), zap.Error(err))
		}
	}()
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
