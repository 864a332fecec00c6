package usecase

import (
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/metrics"
)

// RetentionWindow is the attribution window: clicks older than this are
// useless for correlation and get purged by the sweeper.
const RetentionWindow = 24 * time.Hour

// IngestClickInput carries a validated-at-transport frontend submission.
type IngestClickInput struct {
	ClickID     string
	TimestampMs int64
	Amount      float64
	FBCLID      string
	Source      string
	Medium      string
	Campaign    string
	Content     string
	Term        string
	ClientIP    string
}

type ClickUsecase interface {
	IngestClick(input *IngestClickInput) error
	GetClickByID(clickID string) (*domain.ClickRecord, error)
	SweepExpired(now time.Time) (int64, error)
}

type DefaultClickUsecase struct {
	ClickRepo domain.ClickRepository
}

func NewDefaultClickUsecase(clickRepo domain.ClickRepository) *DefaultClickUsecase {
	return &DefaultClickUsecase{ClickRepo: clickRepo}
}

func (uc *DefaultClickUsecase) IngestClick(input *IngestClickInput) error {
	if input.ClickID == "" {
		return domain.ErrMissingClickID
	}
	if input.TimestampMs == 0 {
		return domain.ErrMissingTimestamp
	}
	if !domain.ValidClickID(input.ClickID) {
		return domain.ErrInvalidClickID
	}

	click := &domain.ClickRecord{
		ClickID:      input.ClickID,
		ObservedAtMs: input.TimestampMs,
		Amount:       input.Amount,
		FBCLID:       input.FBCLID,
		Tags: domain.TrackingTags{
			Source:   input.Source,
			Medium:   input.Medium,
			Campaign: input.Campaign,
			Content:  input.Content,
			Term:     input.Term,
		},
		ClientIP: input.ClientIP,
	}
	domain.ApplyClickDefaults(click)

	if err := uc.ClickRepo.Upsert(click); err != nil {
		return err
	}
	metrics.ClicksIngestedTotal.Inc()
	return nil
}

func (uc *DefaultClickUsecase) GetClickByID(clickID string) (*domain.ClickRecord, error) {
	return uc.ClickRepo.GetByClickID(clickID)
}

// SweepExpired removes every click observed before now minus the
// retention window and reports how many went away.
func (uc *DefaultClickUsecase) SweepExpired(now time.Time) (int64, error) {
	cutoffMs := now.Add(-RetentionWindow).UnixMilli()
	removed, err := uc.ClickRepo.DeleteObservedBefore(cutoffMs)
	if err != nil {
		return 0, err
	}
	metrics.ClicksSweptTotal.Add(float64(removed))
	return removed, nil
}
