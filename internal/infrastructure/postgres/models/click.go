package models

import "time"

// FrontendUTMModel mirrors the frontend_utms table: one row per click
// id, last write wins.
type FrontendUTMModel struct {
	ID            uint   `gorm:"primaryKey"`
	UniqueClickID string `gorm:"uniqueIndex;not null"`
	TimestampMs   int64  `gorm:"index:idx_timestamp_ms;not null"`
	Valor         float64
	FBCLID        string
	UTMSource     string
	UTMMedium     string
	UTMCampaign   string
	UTMContent    string
	UTMTerm       string
	IP            string
	ReceivedAt    time.Time `gorm:"autoCreateTime"`
}

func (FrontendUTMModel) TableName() string {
	return "frontend_utms"
}
