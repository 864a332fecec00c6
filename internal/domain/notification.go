package domain

import "time"

// Parser defaults used when an optional field pattern fails to match.
const (
	DefaultCustomerName  = "Cliente Desconhecido"
	DefaultCustomerEmail = "desconhecido@email.com"
	DefaultPaymentMethod = "unknown"
	DefaultPlatform      = "UnknownPlatform"
)

// SaleCodePrefix is the required prefix of a notification's sale code.
// Sale-code equality with a click id is the sole correlation strategy.
const SaleCodePrefix = "click"

// ParsedNotification holds the fields extracted from a payment
// notification's text. Ephemeral, never persisted.
type ParsedNotification struct {
	TransactionID string
	NetAmount     float64
	SaleCode      string
	CustomerName  string
	CustomerEmail string
	PaymentMethod string
	Platform      string
}

// BindingCommand is the out-of-band /start registration event binding a
// sender identity to a sale code.
type BindingCommand struct {
	Payload string
}

// InboundMessage is the envelope delivered by the chat bridge.
type InboundMessage struct {
	ChatID   int64  `json:"chat_id"`
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
	Date     int64  `json:"date"`
}

// SenderBinding associates a chat sender with the sale code announced
// in its /start payload. Written on registration, not consulted by the
// resolver.
type SenderBinding struct {
	SenderID     string
	ClickID      string
	LastActivity time.Time
}

type SenderBindingRepository interface {
	UpsertBinding(senderID, clickID string) error
	GetBySenderID(senderID string) (*SenderBinding, error)
}

// DiscardedNotification records a dropped inbound message with the
// reason, for offline inspection. Best-effort.
type DiscardedNotification struct {
	ID            string
	ProcessingID  string
	TransactionID string
	Reason        string
	RawExcerpt    string
	DiscardedAt   time.Time
}

type DiscardedNotificationRepository interface {
	CreateLog(log *DiscardedNotification) error
}
