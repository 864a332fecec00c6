package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSenderBindingRepository struct {
	DB *gorm.DB
}

func NewDefaultSenderBindingRepository(db *gorm.DB) *DefaultSenderBindingRepository {
	return &DefaultSenderBindingRepository{DB: db}
}

func (r *DefaultSenderBindingRepository) UpsertBinding(senderID, clickID string) error {
	model := &models.SenderBindingModel{
		SenderID:      senderID,
		UniqueClickID: clickID,
		LastActivity:  time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"unique_click_id", "last_activity"}),
	}).Create(model).Error
}

func (r *DefaultSenderBindingRepository) GetBySenderID(senderID string) (*domain.SenderBinding, error) {
	var model models.SenderBindingModel
	err := r.DB.First(&model, "telegram_user_id = ?", senderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBindingNotFound
		}
		return nil, err
	}
	return &domain.SenderBinding{
		SenderID:     model.SenderID,
		ClickID:      model.UniqueClickID,
		LastActivity: model.LastActivity,
	}, nil
}
