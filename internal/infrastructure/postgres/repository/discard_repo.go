package repository

import (
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDiscardedNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultDiscardedNotificationRepository(db *gorm.DB) *DefaultDiscardedNotificationRepository {
	return &DefaultDiscardedNotificationRepository{DB: db}
}

func (r *DefaultDiscardedNotificationRepository) CreateLog(log *domain.DiscardedNotification) error {
	return r.DB.Create(&models.DiscardedNotificationModel{
		ID:            log.ID,
		ProcessingID:  log.ProcessingID,
		TransactionID: log.TransactionID,
		Reason:        log.Reason,
		RawExcerpt:    log.RawExcerpt,
		DiscardedAt:   log.DiscardedAt,
	}).Error
}
