package domain

// OrderOrigin is recorded on orders produced from the notification stream.
const OrderOrigin = "userbot"

// OrderRecord is a confirmed, forwarded sale. ContentHash is the true
// dedup key: at most one record may ever exist per transaction id, and
// records are never updated or deleted.
type OrderRecord struct {
	ContentKey    string
	ContentHash   string
	Amount        float64
	Tags          *PayloadTags
	OrderID       string
	TransactionID string
	ClientIP      string
	Origin        string
}

// PayloadTags is the nullable tag tuple carried on forwarded orders.
// Nil fields are emitted as JSON null.
type PayloadTags struct {
	Source   *string `json:"utm_source"`
	Medium   *string `json:"utm_medium"`
	Campaign *string `json:"utm_campaign"`
	Content  *string `json:"utm_content"`
	Term     *string `json:"utm_term"`
}

// ContentKeyFor derives the human-readable unique key for a transaction.
// Deterministic prefixing, not hashing: transaction ids are already
// unique upstream.
func ContentKeyFor(transactionID string) string {
	return "chave-" + transactionID
}

// ContentHashFor derives the dedup key enforced by the store's unique
// constraint.
func ContentHashFor(transactionID string) string {
	return "hash-" + transactionID
}

type OrderRepository interface {
	// InsertIgnoreDuplicate persists the order unless one with the same
	// content hash already exists. Returns false when the insert was
	// suppressed by the unique constraint.
	InsertIgnoreDuplicate(order *OrderRecord) (bool, error)
	ExistsByContentHash(hash string) (bool, error)
}
