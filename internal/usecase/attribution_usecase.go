package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// Discard reasons recorded when a notification leaves the pipeline
// without producing an order.
const (
	DiscardIncomplete = "incomplete"
	DiscardDuplicate  = "duplicate"
	DiscardUpstream   = "upstream_error"
	DiscardNetwork    = "network_error"
)

// AttributionEvent is published after every successful forward.
type AttributionEvent struct {
	ProcessingID  string `json:"processing_id"`
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents"`
	Matched       bool   `json:"matched"`
	UTMSource     string `json:"utm_source,omitempty"`
}

type AttributionUsecase interface {
	HandleMessage(ctx context.Context, msg domain.InboundMessage) error
}

// DefaultAttributionUsecase runs the notification pipeline: parse,
// resolve, dedup-check, build, forward, record, publish. Every failure
// past parsing is recovered locally; a notification is processed at
// most once and never retried by this side.
type DefaultAttributionUsecase struct {
	Resolver    AttributionResolver
	OrderRepo   domain.OrderRepository
	Forwarder   domain.Forwarder
	Bindings    BindingUsecase
	Publisher   domain.PublisherPort
	DiscardRepo domain.DiscardedNotificationRepository
	EventsTopic string

	parse func(string) ParseResult
	newID func() string
}

// ParseResult mirrors the parser package result so the pipeline can be
// exercised with a stub parser in tests.
type ParseResult struct {
	Notification *domain.ParsedNotification
	Binding      *domain.BindingCommand
}

func NewDefaultAttributionUsecase(
	resolver AttributionResolver,
	orderRepo domain.OrderRepository,
	forwarder domain.Forwarder,
	bindings BindingUsecase,
	pub domain.PublisherPort,
	discardRepo domain.DiscardedNotificationRepository,
	eventsTopic string,
	parse func(string) ParseResult,
) *DefaultAttributionUsecase {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		log.Fatalf("failed to init processing id generator: %v", err)
	}
	return &DefaultAttributionUsecase{
		Resolver:    resolver,
		OrderRepo:   orderRepo,
		Forwarder:   forwarder,
		Bindings:    bindings,
		Publisher:   pub,
		DiscardRepo: discardRepo,
		EventsTopic: eventsTopic,
		parse:       parse,
		newID:       idGenerator,
	}
}

func (uc *DefaultAttributionUsecase) HandleMessage(ctx context.Context, msg domain.InboundMessage) error {
	metrics.NotificationsReceivedTotal.Inc()

	result := uc.parse(msg.Text)

	if result.Binding != nil {
		if err := uc.Bindings.Register(msg.SenderID, result.Binding.Payload); err != nil {
			slog.Error("failed to save sender binding",
				"sender_id", msg.SenderID, "error", err.Error())
			return err
		}
		slog.Info("sender binding registered",
			"sender_id", msg.SenderID, "click_id", result.Binding.Payload)
		return nil
	}

	if result.Notification == nil {
		// Not a sale notification. The chat carries other chatter too,
		// so this is routine, logged for visibility only.
		metrics.NotificationsDiscardedTotal.WithLabelValues(DiscardIncomplete).Inc()
		uc.logDiscard("", "", DiscardIncomplete, msg.Text)
		return nil
	}

	parsed := result.Notification
	processingID := uc.newID()
	metrics.NotificationsParsedTotal.Inc()

	contentHash := domain.ContentHashFor(parsed.TransactionID)
	exists, err := uc.OrderRepo.ExistsByContentHash(contentHash)
	if err != nil {
		// A failed read degrades to a miss; the unique constraint on
		// insert remains the second line of defense.
		slog.Warn("dedup check failed, proceeding as miss",
			"processing_id", processingID, "error", err.Error())
		exists = false
	}
	if exists {
		slog.Info("duplicate notification suppressed",
			"processing_id", processingID, "transaction_id", parsed.TransactionID)
		metrics.OrdersDuplicateTotal.Inc()
		uc.logDiscard(processingID, parsed.TransactionID, DiscardDuplicate, "")
		return nil
	}

	attribution := uc.Resolver.Resolve(parsed)
	if attribution.Matched {
		metrics.AttributionMatchedTotal.Inc()
	} else {
		metrics.AttributionUnmatchedTotal.Inc()
		slog.Info("no click found for sale code, forwarding without tags",
			"processing_id", processingID, "sale_code", parsed.SaleCode)
	}

	payload := BuildOrderPayload(parsed, attribution, time.Now())

	start := time.Now()
	err = uc.Forwarder.Forward(ctx, payload)
	metrics.ForwardDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			slog.Error("attribution api rejected order",
				"processing_id", processingID,
				"transaction_id", parsed.TransactionID,
				"status", upstream.StatusCode,
				"body", upstream.Body)
			metrics.ForwardFailuresTotal.WithLabelValues("upstream").Inc()
			uc.logDiscard(processingID, parsed.TransactionID, DiscardUpstream, "")
		} else {
			slog.Error("forward request failed",
				"processing_id", processingID,
				"transaction_id", parsed.TransactionID,
				"error", err.Error())
			metrics.ForwardFailuresTotal.WithLabelValues("network").Inc()
			uc.logDiscard(processingID, parsed.TransactionID, DiscardNetwork, "")
		}
		// Dropped. The upstream bot does not redeliver on our request.
		return nil
	}

	record := BuildOrderRecord(parsed, attribution)
	inserted, err := uc.OrderRepo.InsertIgnoreDuplicate(record)
	if err != nil {
		// The upstream call already succeeded, so a blind retry could
		// double-forward. Accepted asymmetry: at-least-once upstream,
		// at-most-once recorded.
		slog.Error("order record write lost after successful forward",
			"processing_id", processingID,
			"transaction_id", parsed.TransactionID,
			"error", err.Error())
	} else if !inserted {
		slog.Info("order record already present, insert ignored",
			"processing_id", processingID, "transaction_id", parsed.TransactionID)
		metrics.OrdersDuplicateTotal.Inc()
	}

	metrics.OrdersForwardedTotal.Inc()
	slog.Info("order forwarded",
		"processing_id", processingID,
		"transaction_id", parsed.TransactionID,
		"amount_cents", payload.Commission.TotalPriceInCents,
		"matched", attribution.Matched)

	uc.publishEvent(processingID, parsed, attribution, payload)
	return nil
}

func (uc *DefaultAttributionUsecase) publishEvent(processingID string, parsed *domain.ParsedNotification, attribution *domain.AttributionResult, payload *domain.OrderPayload) {
	if uc.Publisher == nil {
		return
	}
	event := AttributionEvent{
		ProcessingID:  processingID,
		OrderID:       payload.OrderID,
		TransactionID: parsed.TransactionID,
		AmountCents:   payload.Commission.TotalPriceInCents,
		Matched:       attribution.Matched,
	}
	if attribution.Tags != nil && attribution.Tags.Source != nil {
		event.UTMSource = *attribution.Tags.Source
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal attribution event", "error", err.Error())
		return
	}
	if err := uc.Publisher.Publish(uc.EventsTopic, domain.Message{
		Key:   []byte(parsed.TransactionID),
		Value: value,
	}); err != nil {
		slog.Error("failed to publish attribution event",
			"processing_id", processingID, "error", err.Error())
	}
}

func (uc *DefaultAttributionUsecase) logDiscard(processingID, transactionID, reason, raw string) {
	if uc.DiscardRepo == nil {
		return
	}
	excerpt := raw
	if len(excerpt) > 256 {
		excerpt = excerpt[:256]
	}
	entry := &domain.DiscardedNotification{
		ID:            uuid.New().String(),
		ProcessingID:  processingID,
		TransactionID: transactionID,
		Reason:        reason,
		RawExcerpt:    excerpt,
		DiscardedAt:   time.Now(),
	}
	if err := uc.DiscardRepo.CreateLog(entry); err != nil {
		slog.Warn("failed to log discarded notification", "error", err.Error())
	}
}
