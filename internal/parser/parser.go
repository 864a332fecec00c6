// Package parser extracts structured payment fields from free-text
// gateway notifications. Labels arrive in Portuguese with inconsistent
// accenting and either ':' or the fullwidth '：' separator, so every
// field has its own tolerant, case-insensitive pattern.
package parser

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-attribution-service/internal/domain"
)

const bindingPrefix = "/start "

var (
	transactionIDRe = regexp.MustCompile(`(?i)ID\s+Transa(?:ç|c)[aã]o\s+Gateway[:：]?\s*([\w-]{10,})`)
	netAmountRe     = regexp.MustCompile(`(?i)Valor\s+L[ií]quido[:：]?\s*R?\$?\s*([\d.,]+)`)
	saleCodeRe      = regexp.MustCompile(`(?i)C[óo]digo\s+de\s+Venda[:：]?\s*(.+)`)
	customerNameRe  = regexp.MustCompile(`(?i)Nome\s+Completo[:：]?\s*(.+)`)
	customerMailRe  = regexp.MustCompile(`(?i)E-mail[:：]?\s*(\S+@\S+\.\S+)`)
	paymentMethodRe = regexp.MustCompile(`(?i)M[ée]todo\s+Pagamento[:：]?\s*(.+)`)
	platformRe      = regexp.MustCompile(`(?i)Plataforma\s+Pagamento[:：]?\s*(.+)`)
)

// Result is the outcome of parsing one raw message. Exactly one of the
// fields is set for actionable messages; both nil means the message is
// not a notification and must be ignored without error.
type Result struct {
	Notification *domain.ParsedNotification
	Binding      *domain.BindingCommand
}

func (r Result) Ignored() bool {
	return r.Notification == nil && r.Binding == nil
}

// Parse normalizes raw chat text and extracts a payment notification or
// a session-binding command from it.
func Parse(raw string) Result {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "\r", ""))

	if strings.HasPrefix(text, bindingPrefix) {
		payload := strings.TrimSpace(text[len(bindingPrefix):])
		if decoded, err := url.QueryUnescape(payload); err == nil {
			payload = decoded
		}
		return Result{Binding: &domain.BindingCommand{Payload: payload}}
	}

	idMatch := transactionIDRe.FindStringSubmatch(text)
	amountMatch := netAmountRe.FindStringSubmatch(text)
	if idMatch == nil || amountMatch == nil {
		return Result{}
	}

	amount, ok := parseBRLAmount(amountMatch[1])
	if !ok || amount <= 0 {
		return Result{}
	}

	codeMatch := saleCodeRe.FindStringSubmatch(text)
	if codeMatch == nil {
		return Result{}
	}
	saleCode := strings.TrimSpace(codeMatch[1])
	if !strings.HasPrefix(saleCode, domain.SaleCodePrefix) {
		return Result{}
	}

	parsed := &domain.ParsedNotification{
		TransactionID: strings.TrimSpace(idMatch[1]),
		NetAmount:     amount,
		SaleCode:      saleCode,
		CustomerName:  domain.DefaultCustomerName,
		CustomerEmail: domain.DefaultCustomerEmail,
		PaymentMethod: domain.DefaultPaymentMethod,
		Platform:      domain.DefaultPlatform,
	}

	if m := customerNameRe.FindStringSubmatch(text); m != nil {
		parsed.CustomerName = strings.TrimSpace(m[1])
	}
	if m := customerMailRe.FindStringSubmatch(text); m != nil {
		parsed.CustomerEmail = strings.TrimSpace(m[1])
	}
	if m := paymentMethodRe.FindStringSubmatch(text); m != nil {
		parsed.PaymentMethod = strings.Replace(strings.ToLower(strings.TrimSpace(m[1])), " ", "_", 1)
	}
	if m := platformRe.FindStringSubmatch(text); m != nil {
		parsed.Platform = strings.TrimSpace(m[1])
	}

	return Result{Notification: parsed}
}

// parseBRLAmount converts a BR-formatted amount ("1.234,56") to a
// float: '.' is a thousands separator, ',' the decimal one.
func parseBRLAmount(s string) (float64, bool) {
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	v, err := strconv.ParseFloat(strings.TrimSpace(normalized), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
