package usecase

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
)

func TestBuildOrderPayloadAmounts(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole", amount: 150, want: 15000},
		{name: "cents", amount: 1234.56, want: 123456},
		{name: "rounds half up", amount: 0.125, want: 13},
		{name: "rounds down", amount: 10.004, want: 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := &domain.ParsedNotification{
				TransactionID: "abc123456789",
				NetAmount:     tc.amount,
			}
			attr := &domain.AttributionResult{ClientIP: domain.UnmatchedIP}
			payload := BuildOrderPayload(parsed, attr, time.Now())

			if payload.Commission.TotalPriceInCents != tc.want {
				t.Errorf("total cents = %d, want %d", payload.Commission.TotalPriceInCents, tc.want)
			}
			if payload.Products[0].PriceInCents != tc.want {
				t.Errorf("product cents = %d, want %d", payload.Products[0].PriceInCents, tc.want)
			}
			if payload.Commission.UserCommissionInCents != tc.want {
				t.Errorf("commission cents = %d, want %d", payload.Commission.UserCommissionInCents, tc.want)
			}
			if payload.Commission.GatewayFeeInCents != 0 {
				t.Errorf("gateway fee = %d, want 0", payload.Commission.GatewayFeeInCents)
			}
		})
	}
}

func TestBuildOrderPayloadFixedFields(t *testing.T) {
	parsed := &domain.ParsedNotification{
		TransactionID: "abc123456789",
		NetAmount:     150,
		CustomerName:  "Maria Souza",
		CustomerEmail: "maria@example.com",
		PaymentMethod: "pix",
		Platform:      "GatewayX",
	}
	attr := &domain.AttributionResult{ClientIP: "10.0.0.1"}
	buildTime := time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)

	payload := BuildOrderPayload(parsed, attr, buildTime)

	if payload.OrderID != "abc123456789" {
		t.Errorf("order id = %q", payload.OrderID)
	}
	if payload.Status != "paid" {
		t.Errorf("status = %q", payload.Status)
	}
	if payload.Customer.Country != "BR" {
		t.Errorf("country = %q", payload.Customer.Country)
	}
	if payload.Customer.IP != "10.0.0.1" {
		t.Errorf("customer ip = %q", payload.Customer.IP)
	}
	if payload.IsTest {
		t.Error("isTest must be false")
	}
	if payload.CreatedAt != "2024-03-15 12:30:45" {
		t.Errorf("createdAt = %q", payload.CreatedAt)
	}
	if payload.ApprovedDate != payload.CreatedAt {
		t.Errorf("approvedDate %q != createdAt %q", payload.ApprovedDate, payload.CreatedAt)
	}
	if len(payload.Products) != 1 || payload.Products[0].ID != "acesso-vip-bundle" {
		t.Errorf("products = %+v", payload.Products)
	}
	if payload.Products[0].Quantity != 1 {
		t.Errorf("quantity = %d", payload.Products[0].Quantity)
	}
}

func TestBuildOrderPayloadTimestampsAreUTC(t *testing.T) {
	parsed := &domain.ParsedNotification{TransactionID: "abc123456789", NetAmount: 1}
	attr := &domain.AttributionResult{}

	saoPaulo := time.FixedZone("BRT", -3*60*60)
	local := time.Date(2024, 3, 15, 21, 0, 0, 0, saoPaulo)

	payload := BuildOrderPayload(parsed, attr, local)
	if payload.CreatedAt != "2024-03-16 00:00:00" {
		t.Errorf("createdAt = %q, want UTC rendering", payload.CreatedAt)
	}
}

func TestBuildOrderPayloadEmptyStringTagsBecomeNull(t *testing.T) {
	empty := ""
	source := "fb"
	parsed := &domain.ParsedNotification{TransactionID: "abc123456789", NetAmount: 1}
	attr := &domain.AttributionResult{
		Matched: true,
		Tags: &domain.PayloadTags{
			Source:   &source,
			Medium:   &empty,
			Campaign: nil,
		},
	}

	payload := BuildOrderPayload(parsed, attr, time.Now())
	tags := payload.TrackingParameters
	if tags.Source == nil || *tags.Source != "fb" {
		t.Errorf("source = %v", tags.Source)
	}
	if tags.Medium != nil {
		t.Errorf("empty medium should become null, got %q", *tags.Medium)
	}
	if tags.Campaign != nil {
		t.Errorf("campaign = %v", tags.Campaign)
	}
}

func TestBuildOrderPayloadUnmatchedTagsAllNull(t *testing.T) {
	parsed := &domain.ParsedNotification{TransactionID: "abc123456789", NetAmount: 1}
	attr := &domain.AttributionResult{ClientIP: domain.UnmatchedIP}

	payload := BuildOrderPayload(parsed, attr, time.Now())
	tags := payload.TrackingParameters
	if tags.Source != nil || tags.Medium != nil || tags.Campaign != nil || tags.Content != nil || tags.Term != nil {
		t.Errorf("unmatched payload tags should all be null, got %+v", tags)
	}
}

func TestBuildOrderRecord(t *testing.T) {
	source := "fb"
	parsed := &domain.ParsedNotification{
		TransactionID: "abc123456789",
		NetAmount:     150,
	}
	attr := &domain.AttributionResult{
		Matched:  true,
		Tags:     &domain.PayloadTags{Source: &source},
		ClientIP: "10.0.0.1",
	}

	record := BuildOrderRecord(parsed, attr)
	if record.ContentKey != "chave-abc123456789" {
		t.Errorf("content key = %q", record.ContentKey)
	}
	if record.ContentHash != "hash-abc123456789" {
		t.Errorf("content hash = %q", record.ContentHash)
	}
	if record.OrderID != record.TransactionID {
		t.Errorf("order id %q != transaction id %q", record.OrderID, record.TransactionID)
	}
	if record.Amount != 150 {
		t.Errorf("amount = %v", record.Amount)
	}
	if record.Origin != domain.OrderOrigin {
		t.Errorf("origin = %q", record.Origin)
	}
	if record.Tags.Source == nil || *record.Tags.Source != "fb" {
		t.Errorf("tags = %+v", record.Tags)
	}
}
