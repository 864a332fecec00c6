package repository

import (
	"errors"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultClickRepository struct {
	DB *gorm.DB
}

func NewDefaultClickRepository(db *gorm.DB) *DefaultClickRepository {
	return &DefaultClickRepository{DB: db}
}

// Upsert writes the click keyed by unique_click_id; an existing row has
// every mutable column overwritten (last write wins).
func (r *DefaultClickRepository) Upsert(click *domain.ClickRecord) error {
	model := mappers.ToGORMClick(click)
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "unique_click_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"timestamp_ms", "valor", "fbclid",
			"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
			"ip",
		}),
	}).Create(model).Error
}

func (r *DefaultClickRepository) GetByClickID(clickID string) (*domain.ClickRecord, error) {
	var model models.FrontendUTMModel
	err := r.DB.
		Where("unique_click_id = ?", clickID).
		Order("received_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClickNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClick(&model), nil
}

func (r *DefaultClickRepository) DeleteObservedBefore(cutoffMs int64) (int64, error) {
	result := r.DB.Where("timestamp_ms < ?", cutoffMs).Delete(&models.FrontendUTMModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
