package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/LavaJover/shvark-attribution-service/internal/app/background"
	"github.com/LavaJover/shvark-attribution-service/internal/app/setup"
	"github.com/LavaJover/shvark-attribution-service/internal/config"
	deliveryhttp "github.com/LavaJover/shvark-attribution-service/internal/delivery/http"
	"github.com/LavaJover/shvark-attribution-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-attribution-service/internal/delivery/stream"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/metrics"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	cfg := deps.Config

	setupLogger(cfg)
	metrics.Register()

	usecases := setup.InitializeUsecases(deps)

	clickHandler := handlers.NewClickHandler(usecases.Click)
	router := deliveryhttp.NewRouter(clickHandler, deps.Redis, cfg.RedisService.RateLimitPerMinute)

	// HTTP server first, mirroring the original startup order: the
	// ingestion surface must be up before notifications start flowing.
	httpAddr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	go func() {
		log.Printf("HTTP server listening on %s\n", httpAddr)
		if err := router.Run(httpAddr); err != nil {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	ctx := context.Background()

	tasks := background.NewBackgroundTasks(usecases.Click, cfg.HTTPServer.Port, cfg.SelfPing.Enabled)
	tasks.StartAll(ctx)

	consumer := stream.NewConsumer(
		deps.Subscriber,
		usecases.Attribution,
		cfg.KafkaService.NotificationsTopic,
		cfg.KafkaService.GroupID,
		cfg.ChatBridge.ChatID,
	)

	log.Printf("consuming notifications from %s\n", cfg.KafkaService.NotificationsTopic)
	// Loss of the notification stream is fatal; the platform restarts us.
	if err := consumer.Run(ctx); err != nil {
		log.Fatalf("notification consumer stopped: %v", err)
	}
}

func setupLogger(cfg *config.AttributionConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
