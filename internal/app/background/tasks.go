package background

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/usecase"
)

const (
	sweepInterval    = time.Hour
	selfPingInterval = 20 * time.Second
)

type BackgroundTasks struct {
	ClickUsecase    usecase.ClickUsecase
	SelfPingURL     string
	SelfPingEnabled bool
}

func NewBackgroundTasks(clickUC usecase.ClickUsecase, httpPort string, selfPingEnabled bool) *BackgroundTasks {
	return &BackgroundTasks{
		ClickUsecase:    clickUC,
		SelfPingURL:     fmt.Sprintf("http://localhost:%s/ping", httpPort),
		SelfPingEnabled: selfPingEnabled,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRetentionSweep(ctx)
	if bt.SelfPingEnabled {
		go bt.startSelfPing(ctx)
	}
}

// startRetentionSweep purges expired clicks once at startup and then on
// a fixed interval. A failed sweep is logged; the next tick retries.
func (bt *BackgroundTasks) startRetentionSweep(ctx context.Context) {
	bt.sweepOnce()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.sweepOnce()
		}
	}
}

func (bt *BackgroundTasks) sweepOnce() {
	removed, err := bt.ClickUsecase.SweepExpired(time.Now())
	if err != nil {
		slog.Error("click retention sweep failed", "error", err.Error())
		return
	}
	slog.Info("click retention sweep done", "removed", removed)
}

// startSelfPing keeps the process warm on hosting platforms that idle
// out quiet services.
func (bt *BackgroundTasks) startSelfPing(ctx context.Context) {
	ticker := time.NewTicker(selfPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			resp, err := http.Get(bt.SelfPingURL)
			if err != nil {
				slog.Warn("self-ping failed", "error", err.Error())
				continue
			}
			resp.Body.Close()
		}
	}
}
