package kafka

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// DefaultKafkaSubscriber implements domain.SubscriberPort. The returned
// channel closes when the underlying reader fails, which callers treat
// as loss of the notification session.
type DefaultKafkaSubscriber struct {
	brokers []string
}

func NewDefaultKafkaSubscriber(brokers []string) *DefaultKafkaSubscriber {
	return &DefaultKafkaSubscriber{brokers: brokers}
}

func (k *DefaultKafkaSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	out := make(chan domain.Message)
	go func() {
		defer reader.Close()
		for {
			m, err := reader.ReadMessage(context.Background())
			if err != nil {
				slog.Error("kafka reader stopped", "topic", topic, "error", err.Error())
				close(out)
				return
			}
			out <- domain.Message{Key: m.Key, Value: m.Value}
		}
	}()
	return out, nil
}
