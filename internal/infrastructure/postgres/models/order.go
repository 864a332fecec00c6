package models

import "time"

// VendaModel mirrors the vendas table. Hash carries the unique
// constraint the dedup gate relies on; rows are insert-only.
type VendaModel struct {
	ID            uint    `gorm:"primaryKey"`
	Chave         string  `gorm:"uniqueIndex;not null"`
	Hash          string  `gorm:"uniqueIndex;not null"`
	Valor         float64 `gorm:"not null"`
	UTMSource     *string
	UTMMedium     *string
	UTMCampaign   *string
	UTMContent    *string
	UTMTerm       *string
	OrderID       string
	TransactionID string
	IP            string
	UserAgent     string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (VendaModel) TableName() string {
	return "vendas"
}
