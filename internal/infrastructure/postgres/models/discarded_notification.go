package models

import "time"

// DiscardedNotificationModel keeps dropped notifications with the drop
// reason for offline inspection.
type DiscardedNotificationModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	ProcessingID  string `gorm:"index"`
	TransactionID string `gorm:"index"`
	Reason        string `gorm:"not null"`
	RawExcerpt    string
	DiscardedAt   time.Time `gorm:"not null"`
}

func (DiscardedNotificationModel) TableName() string {
	return "discarded_notifications"
}
