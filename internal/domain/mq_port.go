package domain

// Message is one broker record. Key carries the partitioning key,
// Value the JSON-encoded event or chat envelope.
type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// SubscriberPort hands out a receive channel for a topic. The channel
// closing signals that the underlying session is gone.
type SubscriberPort interface {
	Subscribe(topic, groupID string) (<-chan Message, error)
}
