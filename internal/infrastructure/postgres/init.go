package postgres

import (
	"log"

	"github.com/LavaJover/shvark-attribution-service/internal/config"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AttributionConfig) *gorm.DB {
	dsn := cfg.AttributionDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.FrontendUTMModel{},
		&models.VendaModel{},
		&models.SenderBindingModel{},
		&models.DiscardedNotificationModel{},
	)

	return db
}
