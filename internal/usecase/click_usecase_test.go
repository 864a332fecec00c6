package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
)

func TestIngestClickValidation(t *testing.T) {
	uc := NewDefaultClickUsecase(newFakeClickRepo())

	tests := []struct {
		name  string
		input *IngestClickInput
		want  error
	}{
		{
			name:  "missing click id",
			input: &IngestClickInput{TimestampMs: 1700000000000},
			want:  domain.ErrMissingClickID,
		},
		{
			name:  "missing timestamp",
			input: &IngestClickInput{ClickID: "click-abc"},
			want:  domain.ErrMissingTimestamp,
		},
		{
			name:  "wrong prefix",
			input: &IngestClickInput{ClickID: "sale-abc", TimestampMs: 1700000000000},
			want:  domain.ErrInvalidClickID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := uc.IngestClick(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("IngestClick() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIngestClickAppliesDefaults(t *testing.T) {
	repo := newFakeClickRepo()
	uc := NewDefaultClickUsecase(repo)

	err := uc.IngestClick(&IngestClickInput{
		ClickID:     "click-abc",
		TimestampMs: 1700000000000,
	})
	if err != nil {
		t.Fatalf("IngestClick: %v", err)
	}

	stored := repo.clicks["click-abc"]
	if stored.Tags.Source != domain.DefaultSource {
		t.Errorf("source = %q, want %q", stored.Tags.Source, domain.DefaultSource)
	}
	if stored.Tags.Campaign != domain.DefaultCampaign {
		t.Errorf("campaign = %q, want %q", stored.Tags.Campaign, domain.DefaultCampaign)
	}
	if stored.ClientIP != domain.DefaultClientIP {
		t.Errorf("client ip = %q, want %q", stored.ClientIP, domain.DefaultClientIP)
	}
}

func TestIngestClickLastWriteWins(t *testing.T) {
	repo := newFakeClickRepo()
	uc := NewDefaultClickUsecase(repo)

	first := &IngestClickInput{
		ClickID:     "click-abc",
		TimestampMs: 1700000000000,
		Source:      "fb",
	}
	second := &IngestClickInput{
		ClickID:     "click-abc",
		TimestampMs: 1700000005000,
		Source:      "ig",
	}
	if err := uc.IngestClick(first); err != nil {
		t.Fatalf("IngestClick: %v", err)
	}
	if err := uc.IngestClick(second); err != nil {
		t.Fatalf("IngestClick: %v", err)
	}

	stored := repo.clicks["click-abc"]
	if stored.Tags.Source != "ig" {
		t.Errorf("source = %q, want second submission to win", stored.Tags.Source)
	}
	if stored.ObservedAtMs != 1700000005000 {
		t.Errorf("observed at = %d", stored.ObservedAtMs)
	}
}

func TestSweepExpiredCutoff(t *testing.T) {
	repo := newFakeClickRepo()
	uc := NewDefaultClickUsecase(repo)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	repo.Upsert(&domain.ClickRecord{
		ClickID:      "click-old",
		ObservedAtMs: now.Add(-25 * time.Hour).UnixMilli(),
	})
	repo.Upsert(&domain.ClickRecord{
		ClickID:      "click-fresh",
		ObservedAtMs: now.Add(-23 * time.Hour).UnixMilli(),
	})

	removed, err := uc.SweepExpired(now)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := repo.clicks["click-old"]; ok {
		t.Error("expired click should be gone")
	}
	if _, ok := repo.clicks["click-fresh"]; !ok {
		t.Error("click inside the window must survive")
	}
}
