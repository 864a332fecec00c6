package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/parser"
)

// fakeOrderRepo implements domain.OrderRepository in memory with the
// same insert-or-ignore semantics as the unique constraint.
type fakeOrderRepo struct {
	orders map[string]*domain.OrderRecord
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.OrderRecord)}
}

func (f *fakeOrderRepo) InsertIgnoreDuplicate(order *domain.OrderRecord) (bool, error) {
	if _, ok := f.orders[order.ContentHash]; ok {
		return false, nil
	}
	f.orders[order.ContentHash] = order
	return true, nil
}

func (f *fakeOrderRepo) ExistsByContentHash(hash string) (bool, error) {
	_, ok := f.orders[hash]
	return ok, nil
}

type fakeForwarder struct {
	calls    int
	err      error
	payloads []*domain.OrderPayload
}

func (f *fakeForwarder) Forward(_ context.Context, payload *domain.OrderPayload) error {
	f.calls++
	f.payloads = append(f.payloads, payload)
	return f.err
}

type fakeBindingRepo struct {
	bindings map[string]string
}

func newFakeBindingRepo() *fakeBindingRepo {
	return &fakeBindingRepo{bindings: make(map[string]string)}
}

func (f *fakeBindingRepo) UpsertBinding(senderID, clickID string) error {
	f.bindings[senderID] = clickID
	return nil
}

func (f *fakeBindingRepo) GetBySenderID(senderID string) (*domain.SenderBinding, error) {
	clickID, ok := f.bindings[senderID]
	if !ok {
		return nil, domain.ErrBindingNotFound
	}
	return &domain.SenderBinding{SenderID: senderID, ClickID: clickID}, nil
}

type fakePublisher struct {
	messages []domain.Message
}

func (f *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	f.messages = append(f.messages, msgs...)
	return nil
}

type pipelineFixture struct {
	clicks    *fakeClickRepo
	orders    *fakeOrderRepo
	forwarder *fakeForwarder
	bindings  *fakeBindingRepo
	publisher *fakePublisher
	uc        *DefaultAttributionUsecase
}

func newPipelineFixture() *pipelineFixture {
	clicks := newFakeClickRepo()
	orders := newFakeOrderRepo()
	forwarder := &fakeForwarder{}
	bindings := newFakeBindingRepo()
	publisher := &fakePublisher{}

	uc := NewDefaultAttributionUsecase(
		NewDefaultAttributionResolver(clicks),
		orders,
		forwarder,
		NewDefaultBindingUsecase(bindings),
		publisher,
		nil,
		"attribution-events",
		func(raw string) ParseResult {
			result := parser.Parse(raw)
			return ParseResult{Notification: result.Notification, Binding: result.Binding}
		},
	)

	return &pipelineFixture{
		clicks:    clicks,
		orders:    orders,
		forwarder: forwarder,
		bindings:  bindings,
		publisher: publisher,
		uc:        uc,
	}
}

const saleMessage = "ID Transação Gateway: abc123456789\n" +
	"Valor Líquido: R$ 150,00\n" +
	"Código de Venda: click-xyz"

func inbound(text string) domain.InboundMessage {
	return domain.InboundMessage{ChatID: 1, SenderID: "777", Text: text}
}

func TestPipelineMatchedNotification(t *testing.T) {
	f := newPipelineFixture()
	f.clicks.Upsert(&domain.ClickRecord{
		ClickID:      "click-xyz",
		ObservedAtMs: 1700000000000,
		Tags:         domain.TrackingTags{Source: "fb"},
	})

	if err := f.uc.HandleMessage(context.Background(), inbound(saleMessage)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if f.forwarder.calls != 1 {
		t.Fatalf("forward calls = %d, want 1", f.forwarder.calls)
	}
	payload := f.forwarder.payloads[0]
	if payload.Commission.TotalPriceInCents != 15000 {
		t.Errorf("cents = %d, want 15000", payload.Commission.TotalPriceInCents)
	}
	if payload.TrackingParameters.Source == nil || *payload.TrackingParameters.Source != "fb" {
		t.Errorf("utm_source = %v", payload.TrackingParameters.Source)
	}

	record, ok := f.orders.orders["hash-abc123456789"]
	if !ok {
		t.Fatal("order record not persisted")
	}
	if record.Tags.Source == nil || *record.Tags.Source != "fb" {
		t.Errorf("record utm_source = %v", record.Tags.Source)
	}
	if len(f.publisher.messages) != 1 {
		t.Errorf("published events = %d, want 1", len(f.publisher.messages))
	}
}

func TestPipelineUnmatchedStillForwards(t *testing.T) {
	f := newPipelineFixture()

	if err := f.uc.HandleMessage(context.Background(), inbound(saleMessage)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if f.forwarder.calls != 1 {
		t.Fatalf("forward calls = %d, want 1", f.forwarder.calls)
	}
	payload := f.forwarder.payloads[0]
	tags := payload.TrackingParameters
	if tags.Source != nil || tags.Medium != nil || tags.Campaign != nil || tags.Content != nil || tags.Term != nil {
		t.Errorf("unmatched tags should be null, got %+v", tags)
	}
	if payload.Customer.IP != domain.UnmatchedIP {
		t.Errorf("customer ip = %q, want %q", payload.Customer.IP, domain.UnmatchedIP)
	}
	if _, ok := f.orders.orders["hash-abc123456789"]; !ok {
		t.Error("order record should exist even without attribution")
	}
}

func TestPipelineIdempotence(t *testing.T) {
	f := newPipelineFixture()

	for i := 0; i < 2; i++ {
		if err := f.uc.HandleMessage(context.Background(), inbound(saleMessage)); err != nil {
			t.Fatalf("HandleMessage #%d: %v", i+1, err)
		}
	}

	if f.forwarder.calls != 1 {
		t.Errorf("forward calls = %d, want 1 (second run must short-circuit)", f.forwarder.calls)
	}
	if len(f.orders.orders) != 1 {
		t.Errorf("order records = %d, want 1", len(f.orders.orders))
	}
}

func TestPipelineInvalidMessageNoSideEffects(t *testing.T) {
	f := newPipelineFixture()

	cases := []string{
		"ID Transação Gateway: abc123456789\nCódigo de Venda: click-xyz", // no amount
		"Valor Líquido: R$ 150,00\nCódigo de Venda: click-xyz",           // no transaction id
		"ID Transação Gateway: abc123456789\nValor Líquido: R$ 150,00",   // no sale code
		"oi",
	}
	for _, text := range cases {
		if err := f.uc.HandleMessage(context.Background(), inbound(text)); err != nil {
			t.Fatalf("HandleMessage(%q): %v", text, err)
		}
	}

	if f.forwarder.calls != 0 {
		t.Errorf("forward calls = %d, want 0", f.forwarder.calls)
	}
	if len(f.orders.orders) != 0 {
		t.Errorf("order records = %d, want 0", len(f.orders.orders))
	}
}

func TestPipelineForwardFailureDropsNotification(t *testing.T) {
	f := newPipelineFixture()
	f.forwarder.err = &domain.UpstreamError{StatusCode: 401, Body: "invalid token"}

	if err := f.uc.HandleMessage(context.Background(), inbound(saleMessage)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if len(f.orders.orders) != 0 {
		t.Error("no order record may be written when the forward fails")
	}
	if len(f.publisher.messages) != 0 {
		t.Error("no event may be published when the forward fails")
	}

	// Upstream redelivery of the same message is processed afresh.
	f.forwarder.err = nil
	if err := f.uc.HandleMessage(context.Background(), inbound(saleMessage)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.orders.orders) != 1 {
		t.Errorf("order records = %d, want 1 after successful redelivery", len(f.orders.orders))
	}
}

func TestPipelineNetworkFailureDropsNotification(t *testing.T) {
	f := newPipelineFixture()
	f.forwarder.err = errors.New("dial tcp: connection refused")

	if err := f.uc.HandleMessage(context.Background(), inbound(saleMessage)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.orders.orders) != 0 {
		t.Error("no order record may be written on network failure")
	}
}

func TestPipelineBindingCommand(t *testing.T) {
	f := newPipelineFixture()

	if err := f.uc.HandleMessage(context.Background(), inbound("/start click-abc123")); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	binding, err := f.bindings.GetBySenderID("777")
	if err != nil {
		t.Fatalf("binding not saved: %v", err)
	}
	if binding.ClickID != "click-abc123" {
		t.Errorf("binding click id = %q", binding.ClickID)
	}
	if f.forwarder.calls != 0 {
		t.Error("binding command must not reach the forwarder")
	}
}
