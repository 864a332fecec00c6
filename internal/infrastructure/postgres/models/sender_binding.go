package models

import "time"

// SenderBindingModel mirrors the telegram_users table.
type SenderBindingModel struct {
	SenderID      string `gorm:"primaryKey;column:telegram_user_id"`
	UniqueClickID string
	LastActivity  time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (SenderBindingModel) TableName() string {
	return "telegram_users"
}
