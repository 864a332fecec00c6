package domain

import "strings"

// Sentinel values applied when a frontend submission omits a tag.
// These are stored as-is; the narrower empty-string rule in the order
// builder is a separate step and must stay separate.
const (
	DefaultSource   = "direct"
	DefaultMedium   = "none"
	DefaultCampaign = "no_campaign"
	DefaultContent  = "no_content"
	DefaultTerm     = "no_term"
	DefaultClientIP = "unknown"
)

// ClickIDPrefix is the required format of frontend click identifiers.
const ClickIDPrefix = "click-"

type TrackingTags struct {
	Source   string
	Medium   string
	Campaign string
	Content  string
	Term     string
}

// ClickRecord is a frontend-submitted marketing-attribution snapshot.
// Re-submission with the same ClickID overwrites every mutable field.
type ClickRecord struct {
	ClickID      string
	ObservedAtMs int64
	Amount       float64
	FBCLID       string
	Tags         TrackingTags
	ClientIP     string
}

// ApplyClickDefaults fills absent tags and IP with the write-time
// sentinels before the record hits the store.
func ApplyClickDefaults(c *ClickRecord) {
	if c.Tags.Source == "" {
		c.Tags.Source = DefaultSource
	}
	if c.Tags.Medium == "" {
		c.Tags.Medium = DefaultMedium
	}
	if c.Tags.Campaign == "" {
		c.Tags.Campaign = DefaultCampaign
	}
	if c.Tags.Content == "" {
		c.Tags.Content = DefaultContent
	}
	if c.Tags.Term == "" {
		c.Tags.Term = DefaultTerm
	}
	if c.ClientIP == "" {
		c.ClientIP = DefaultClientIP
	}
}

func ValidClickID(id string) bool {
	return strings.HasPrefix(id, ClickIDPrefix)
}

type ClickRepository interface {
	Upsert(click *ClickRecord) error
	GetByClickID(clickID string) (*ClickRecord, error)
	DeleteObservedBefore(cutoffMs int64) (int64, error)
}
