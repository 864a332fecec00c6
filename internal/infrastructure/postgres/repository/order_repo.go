package repository

import (
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// InsertIgnoreDuplicate relies on the unique constraint on hash: a
// concurrent insert for the same transaction is silently ignored, which
// is what recovers atomicity for the non-atomic check-then-forward.
func (r *DefaultOrderRepository) InsertIgnoreDuplicate(order *domain.OrderRecord) (bool, error) {
	model := mappers.ToGORMVenda(order)
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultOrderRepository) ExistsByContentHash(hash string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.VendaModel{}).Where("hash = ?", hash).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
