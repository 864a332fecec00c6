package usecase

import (
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
)

// AttributionResolver correlates a parsed notification with the click
// that originated it.
type AttributionResolver interface {
	Resolve(parsed *domain.ParsedNotification) *domain.AttributionResult
}

// DefaultAttributionResolver tries its strategies in order and falls
// back to an unmatched result when none of them finds a click. Today
// the list holds the single sale-code strategy; additional correlation
// modes (sender binding, IP/time proximity) slot in behind it.
type DefaultAttributionResolver struct {
	strategies []domain.ResolutionStrategy
}

func NewDefaultAttributionResolver(clickRepo domain.ClickRepository) *DefaultAttributionResolver {
	return &DefaultAttributionResolver{
		strategies: []domain.ResolutionStrategy{
			&SaleCodeStrategy{Clicks: clickRepo},
		},
	}
}

func (r *DefaultAttributionResolver) Resolve(parsed *domain.ParsedNotification) *domain.AttributionResult {
	for _, strategy := range r.strategies {
		click, err := strategy.Resolve(parsed)
		if err != nil {
			// Store read failures degrade to a miss, never abort the
			// notification.
			slog.Warn("attribution strategy failed",
				"strategy", strategy.Name(),
				"sale_code", parsed.SaleCode,
				"error", err.Error())
			continue
		}
		if click == nil {
			continue
		}
		return matchedResult(click)
	}

	return &domain.AttributionResult{
		Matched:  false,
		ClientIP: domain.UnmatchedIP,
	}
}

// SaleCodeStrategy looks the click up by the sale code embedded in the
// notification. The sole correlation rule: saleCode == clickId.
type SaleCodeStrategy struct {
	Clicks domain.ClickRepository
}

func (s *SaleCodeStrategy) Name() string { return "sale_code" }

func (s *SaleCodeStrategy) Resolve(parsed *domain.ParsedNotification) (*domain.ClickRecord, error) {
	click, err := s.Clicks.GetByClickID(parsed.SaleCode)
	if err != nil {
		if errors.Is(err, domain.ErrClickNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return click, nil
}

func matchedResult(click *domain.ClickRecord) *domain.AttributionResult {
	ip := click.ClientIP
	if ip == "" {
		ip = domain.MatchedIPFallback
	}
	return &domain.AttributionResult{
		Matched: true,
		Click:   click,
		Tags: &domain.PayloadTags{
			Source:   ptr(orDefault(click.Tags.Source, domain.MatchedNoSource)),
			Medium:   ptr(orDefault(click.Tags.Medium, domain.MatchedNoMedium)),
			Campaign: ptr(orDefault(click.Tags.Campaign, domain.MatchedNoCampaign)),
			Content:  ptr(orDefault(click.Tags.Content, domain.MatchedNoContent)),
			Term:     ptr(orDefault(click.Tags.Term, domain.MatchedNoTerm)),
		},
		ClientIP: ip,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func ptr(s string) *string { return &s }
