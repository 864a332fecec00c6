// Package stream consumes the chat-bridge topic that carries raw
// notification-channel messages. The chat transport itself (session,
// authentication) lives on the far side of the bridge; this side only
// sees the decoded envelope.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/usecase"
)

type Consumer struct {
	Subscriber domain.SubscriberPort
	Usecase    usecase.AttributionUsecase
	Topic      string
	GroupID    string
	ChatID     int64
}

func NewConsumer(sub domain.SubscriberPort, uc usecase.AttributionUsecase, topic, groupID string, chatID int64) *Consumer {
	return &Consumer{
		Subscriber: sub,
		Usecase:    uc,
		Topic:      topic,
		GroupID:    groupID,
		ChatID:     chatID,
	}
}

// Run blocks consuming messages until the subscription channel closes
// or the context is canceled. A closed channel means the notification
// session is gone, which the caller treats as fatal.
func (c *Consumer) Run(ctx context.Context) error {
	messages, err := c.Subscriber.Subscribe(c.Topic, c.GroupID)
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", c.Topic, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("notification stream closed")
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg domain.Message) {
	var inbound domain.InboundMessage
	if err := json.Unmarshal(msg.Value, &inbound); err != nil {
		slog.Warn("dropping undecodable chat message", "error", err.Error())
		return
	}
	if inbound.Text == "" {
		return
	}
	if c.ChatID != 0 && NormalizeChatID(inbound.ChatID) != NormalizeChatID(c.ChatID) {
		return
	}
	if err := c.Usecase.HandleMessage(ctx, inbound); err != nil {
		slog.Error("failed to handle chat message", "error", err.Error())
	}
}

// NormalizeChatID maps the chat platform's id spellings onto one
// canonical form: supergroup ids arrive as -100<id>, plain groups as a
// negated id.
func NormalizeChatID(id int64) int64 {
	if id >= 0 {
		return id
	}
	const supergroupOffset = -1000000000000
	if id < supergroupOffset {
		return -(id - supergroupOffset)
	}
	return -id
}
