package setup

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/config"
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/kafka"
	migraterunner "github.com/LavaJover/shvark-attribution-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/utmify"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.AttributionConfig
	DB           *gorm.DB
	Publisher    *kafka.DefaultKafkaPublisher
	Subscriber   *kafka.DefaultKafkaSubscriber
	Redis        *redis.Client
	Forwarder    domain.Forwarder
	Repositories *Repositories
}

type Repositories struct {
	ClickRepo   domain.ClickRepository
	OrderRepo   domain.OrderRepository
	BindingRepo domain.SenderBindingRepository
	DiscardRepo domain.DiscardedNotificationRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	if cfg.AttributionDB.MigrationsPath != "" {
		if err := migraterunner.Run(db, cfg.AttributionDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}

	var redisClient *redis.Client
	if cfg.RedisService.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisService.Addr})
	}

	repos := &Repositories{
		ClickRepo:   repository.NewDefaultClickRepository(db),
		OrderRepo:   repository.NewDefaultOrderRepository(db),
		BindingRepo: repository.NewDefaultSenderBindingRepository(db),
		DiscardRepo: repository.NewDefaultDiscardedNotificationRepository(db),
	}

	return &Dependencies{
		Config:     cfg,
		DB:         db,
		Publisher:  kafka.NewDefaultKafkaPublisher(brokers),
		Subscriber: kafka.NewDefaultKafkaSubscriber(brokers),
		Redis:      redisClient,
		Forwarder: utmify.NewClient(
			cfg.Utmify.APIURL,
			cfg.Utmify.APIKey,
			time.Duration(cfg.Utmify.TimeoutSeconds)*time.Second,
		),
		Repositories: repos,
	}, nil
}
