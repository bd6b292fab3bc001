package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the checkout session outcome as last seen by us.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// CheckoutKind tells what a checkout charges for.
type CheckoutKind string

const (
	CheckoutKindQuote CheckoutKind = "quote"
	CheckoutKindPlan  CheckoutKind = "plan"
)

// CheckoutPayment is the payment record persisted when a provider session is opened.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment/session id)
//   - GSI1 (reference-index): reference (quote id, or plan reference)
//
// Amount is kept as the decimal string that was charged so it round-trips exactly.
// ProviderPayloadRaw keeps the provider response for traceability.
type CheckoutPayment struct {
	ID          string        `json:"id"`
	Reference   string        `json:"reference"`
	Kind        CheckoutKind  `json:"kind"`
	Provider    string        `json:"provider"`
	Amount      string        `json:"amount"`
	Currency    string        `json:"currency"`
	CheckoutURL string        `json:"checkout_url,omitempty"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
