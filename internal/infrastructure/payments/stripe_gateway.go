package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"go.uber.org/zap"
)

var ErrMissingStripeAPIKey = errors.New("missing STRIPE_API_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway opens Stripe Checkout Sessions. One-off amounts use payment
// mode, intervals use subscription mode with an inline recurring price.
type StripeGateway struct {
	successURL string
	cancelURL  string
	newSession func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	log        *zap.Logger
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(apiKey, successURL, cancelURL string) (*StripeGateway, error) {
	log := logging.Named("payment.stripe")
	if strings.TrimSpace(apiKey) == "" {
		log.Warn("missing STRIPE_API_KEY")
		return nil, ErrMissingStripeAPIKey
	}
	stripe.Key = apiKey
	log.Info("stripe client initialized")

	return &StripeGateway{
		successURL: successURL,
		cancelURL:  cancelURL,
		newSession: session.New,
		log:        log,
	}, nil
}

func (g *StripeGateway) Name() string { return "stripe" }

func (g *StripeGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
	if g == nil || g.newSession == nil {
		return interfaces.CheckoutResult{}, ErrStripeGatewayNotConfigured
	}
	log := g.log.With(zap.String("reference", req.Reference), zap.String("currency", req.Currency))

	params := buildCheckoutSessionParams(req, g.successURL, g.cancelURL)
	params.Context = ctx
	log.Info("create session start", zap.String("mode", *params.Mode))

	s, err := g.newSession(params)
	if err != nil {
		log.Error("create session failed", zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}

	raw, err := json.Marshal(s)
	if err != nil {
		log.Error("session marshal failed", zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}
	log.Info("create session success", zap.String("session_id", s.ID), zap.String("status", string(s.Status)))

	return interfaces.CheckoutResult{
		ProviderPaymentID: s.ID,
		ProviderStatus:    stripeSessionStatus(s),
		CheckoutURL:       s.URL,
		ProviderResponse:  raw,
	}, nil
}

func buildCheckoutSessionParams(req interfaces.CheckoutRequest, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(strings.ToLower(req.Currency)),
		UnitAmount: stripe.Int64(pricing.MinorUnits(req.Amount, req.Currency)),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(req.Description),
		},
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(req.Reference),
	}
	if req.PayerEmail != "" {
		params.CustomerEmail = stripe.String(req.PayerEmail)
	}

	if req.Interval != "" {
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval:      stripe.String(req.Interval),
			IntervalCount: stripe.Int64(1),
		}
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: req.Metadata,
		}
	} else {
		params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			Description: stripe.String(req.Description),
			Metadata:    req.Metadata,
		}
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}

// stripeSessionStatus folds a session's lifecycle and payment state into the
// provider status the checkout use case understands.
func stripeSessionStatus(s *stripe.CheckoutSession) string {
	switch {
	case s.Status == stripe.CheckoutSessionStatusExpired:
		return "expired"
	case s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return "paid"
	case s.Status == stripe.CheckoutSessionStatusComplete:
		return "complete"
	}
	return "open"
}
