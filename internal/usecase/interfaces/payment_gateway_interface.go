package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// CheckoutRequest is what a payment provider needs to open a checkout.
//
// Amount is the final chargeable amount in Currency's major unit; providers
// convert to minor units themselves. Interval is "" for one-off payments and
// "month" or "year" for subscriptions.
type CheckoutRequest struct {
	Reference   string
	Description string
	Amount      decimal.Decimal
	Currency    string
	Interval    string
	PayerEmail  string
	Metadata    map[string]string
}

// CheckoutResult is the provider's answer.
type CheckoutResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	CheckoutURL       string
	ProviderResponse  json.RawMessage
}

// IPaymentGateway abstracts external payment providers (Stripe, Mercado Pago).
type IPaymentGateway interface {
	Name() string
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
}
