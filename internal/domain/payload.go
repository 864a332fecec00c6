package domain

import "context"

// PayloadTimeFormat is the UTC timestamp layout the attribution API expects.
const PayloadTimeFormat = "2006-01-02 15:04:05"

// OrderPayload is the normalized order sent to the attribution API.
type OrderPayload struct {
	OrderID            string          `json:"orderId"`
	Platform           string          `json:"platform"`
	PaymentMethod      string          `json:"paymentMethod"`
	Status             string          `json:"status"`
	CreatedAt          string          `json:"createdAt"`
	ApprovedDate       string          `json:"approvedDate"`
	Customer           PayloadCustomer `json:"customer"`
	Products           []PayloadItem   `json:"products"`
	TrackingParameters PayloadTags     `json:"trackingParameters"`
	Commission         Commission      `json:"commission"`
	IsTest             bool            `json:"isTest"`
}

type PayloadCustomer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Country  string  `json:"country"`
	IP       string  `json:"ip"`
}

type PayloadItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PlanID      *string `json:"planId"`
	PlanName    *string `json:"planName"`
	Quantity    int     `json:"quantity"`
	PriceInCents int64  `json:"priceInCents"`
}

type Commission struct {
	TotalPriceInCents     int64  `json:"totalPriceInCents"`
	GatewayFeeInCents     int64  `json:"gatewayFeeInCents"`
	UserCommissionInCents int64  `json:"userCommissionInCents"`
	Currency              string `json:"currency"`
}

// Forwarder sends a built payload upstream. A nil error means the order
// was accepted; *UpstreamError carries non-2xx responses, any other
// error is a network failure. Single attempt, no retry.
type Forwarder interface {
	Forward(ctx context.Context, payload *OrderPayload) error
}
