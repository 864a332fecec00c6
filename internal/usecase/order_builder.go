package usecase

import (
	"math"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
)

const (
	payloadStatus   = "paid"
	payloadCountry  = "BR"
	payloadCurrency = "BRL"

	// The catalog is synthetic: every sale maps to the single bundle.
	productID   = "acesso-vip-bundle"
	productName = "Acesso VIP"
)

// BuildOrderPayload assembles the upstream order payload from a parsed
// notification and its attribution. Pure, no I/O. Amounts are converted
// to integer cents with standard rounding (half away from zero, which
// is half-up for the positive amounts the parser admits).
func BuildOrderPayload(parsed *domain.ParsedNotification, attr *domain.AttributionResult, now time.Time) *domain.OrderPayload {
	cents := amountInCents(parsed.NetAmount)
	stamp := now.UTC().Format(domain.PayloadTimeFormat)

	return &domain.OrderPayload{
		OrderID:       parsed.TransactionID,
		Platform:      parsed.Platform,
		PaymentMethod: parsed.PaymentMethod,
		Status:        payloadStatus,
		CreatedAt:     stamp,
		ApprovedDate:  stamp,
		Customer: domain.PayloadCustomer{
			Name:    parsed.CustomerName,
			Email:   parsed.CustomerEmail,
			Country: payloadCountry,
			IP:      attr.ClientIP,
		},
		Products: []domain.PayloadItem{
			{
				ID:           productID,
				Name:         productName,
				Quantity:     1,
				PriceInCents: cents,
			},
		},
		TrackingParameters: normalizeEmptyTags(attr.Tags),
		Commission: domain.Commission{
			TotalPriceInCents:     cents,
			GatewayFeeInCents:     0,
			UserCommissionInCents: cents,
			Currency:              payloadCurrency,
		},
		IsTest: false,
	}
}

// BuildOrderRecord assembles the durable order row written after a
// successful forward. The record keeps the resolver's tags as resolved,
// without the payload-level empty-string rule.
func BuildOrderRecord(parsed *domain.ParsedNotification, attr *domain.AttributionResult) *domain.OrderRecord {
	return &domain.OrderRecord{
		ContentKey:    domain.ContentKeyFor(parsed.TransactionID),
		ContentHash:   domain.ContentHashFor(parsed.TransactionID),
		Amount:        parsed.NetAmount,
		Tags:          attr.Tags,
		OrderID:       parsed.TransactionID,
		TransactionID: parsed.TransactionID,
		ClientIP:      attr.ClientIP,
		Origin:        domain.OrderOrigin,
	}
}

func amountInCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// normalizeEmptyTags maps empty-string tags to null for emission. This
// is distinct from the sentinel defaults applied upstream: only the
// literal empty string is rewritten here.
func normalizeEmptyTags(tags *domain.PayloadTags) domain.PayloadTags {
	if tags == nil {
		return domain.PayloadTags{}
	}
	return domain.PayloadTags{
		Source:   dropEmpty(tags.Source),
		Medium:   dropEmpty(tags.Medium),
		Campaign: dropEmpty(tags.Campaign),
		Content:  dropEmpty(tags.Content),
		Term:     dropEmpty(tags.Term),
	}
}

func dropEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
