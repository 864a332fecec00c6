package domain

// Resolve-time fallbacks. Distinct from the write-time click sentinels:
// these apply when a matched click carries empty tag columns.
const (
	MatchedNoSource   = "no_source"
	MatchedNoMedium   = "no_medium"
	MatchedNoCampaign = "no_campaign"
	MatchedNoContent  = "no_content"
	MatchedNoTerm     = "no_term"

	// IP markers for the two attribution outcomes.
	MatchedIPFallback = "frontend_matched"
	UnmatchedIP       = "telegram"
)

// AttributionResult is the outcome of correlating a parsed notification
// with a click record. An unmatched result still proceeds to order
// creation: attribution is best-effort, not required.
type AttributionResult struct {
	Matched  bool
	Click    *ClickRecord
	Tags     *PayloadTags
	ClientIP string
}

// ResolutionStrategy is one way of locating the originating click for a
// notification. Strategies are tried in order; returning (nil, nil)
// means "no opinion, try the next one".
type ResolutionStrategy interface {
	Name() string
	Resolve(parsed *ParsedNotification) (*ClickRecord, error)
}
