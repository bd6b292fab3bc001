package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type preapprovalCreator interface {
	Create(ctx context.Context, request preapproval.Request) (*preapproval.Response, error)
}

// MercadoPagoGateway opens Checkout Pro preferences for one-off amounts and
// preapprovals for recurring plans.
type MercadoPagoGateway struct {
	preferences   preferenceCreator
	subscriptions preapprovalCreator
	successURL    string
	cancelURL     string
	log           *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, successURL, cancelURL string) (*MercadoPagoGateway, error) {
	log := logging.Named("payment.mercadopago")
	if strings.TrimSpace(accessToken) == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{
		preferences:   preference.NewClient(cfg),
		subscriptions: preapproval.NewClient(cfg),
		successURL:    successURL,
		cancelURL:     cancelURL,
		log:           log,
	}, nil
}

func (g *MercadoPagoGateway) Name() string { return "mercadopago" }

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
	if g == nil || g.preferences == nil {
		return interfaces.CheckoutResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log := g.log.With(zap.String("reference", req.Reference), zap.String("currency", req.Currency))

	if req.Interval != "" {
		return g.createSubscription(ctx, log, req)
	}

	log.Info("create preference start")
	resp, err := g.preferences.Create(ctx, buildPreferenceRequest(req, g.successURL, g.cancelURL))
	if err != nil {
		log.Error("sdk create preference failed", zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Error("response marshal failed", zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}
	log.Info("create preference success", zap.String("preference_id", resp.ID))

	// A preference is only a checkout page; the payment itself is pending.
	return interfaces.CheckoutResult{
		ProviderPaymentID: resp.ID,
		ProviderStatus:    "pending",
		CheckoutURL:       resp.InitPoint,
		ProviderResponse:  raw,
	}, nil
}

func (g *MercadoPagoGateway) createSubscription(ctx context.Context, log *zap.Logger, req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
	if g.subscriptions == nil {
		return interfaces.CheckoutResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Info("create preapproval start", zap.String("interval", req.Interval))

	resp, err := g.subscriptions.Create(ctx, buildPreapprovalRequest(req, g.successURL))
	if err != nil {
		log.Error("sdk create preapproval failed", zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Error("response marshal failed", zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}
	log.Info("create preapproval success", zap.String("preapproval_id", resp.ID), zap.String("status", resp.Status))

	return interfaces.CheckoutResult{
		ProviderPaymentID: resp.ID,
		ProviderStatus:    resp.Status,
		CheckoutURL:       resp.InitPoint,
		ProviderResponse:  raw,
	}, nil
}

func buildPreferenceRequest(req interfaces.CheckoutRequest, successURL, cancelURL string) preference.Request {
	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	pr := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         req.Reference,
				Title:      req.Description,
				Quantity:   1,
				UnitPrice:  req.Amount.InexactFloat64(),
				CurrencyID: strings.ToUpper(req.Currency),
			},
		},
		ExternalReference: req.Reference,
		Metadata:          metadata,
		BackURLs: &preference.BackURLsRequest{
			Success: successURL,
			Failure: cancelURL,
			Pending: successURL,
		},
	}
	if req.PayerEmail != "" {
		pr.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	return pr
}

func buildPreapprovalRequest(req interfaces.CheckoutRequest, backURL string) preapproval.Request {
	frequency := 1
	if req.Interval == "year" {
		frequency = 12
	}
	return preapproval.Request{
		Reason:            req.Description,
		ExternalReference: req.Reference,
		PayerEmail:        req.PayerEmail,
		BackURL:           backURL,
		Status:            "pending",
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         frequency,
			FrequencyType:     "months",
			TransactionAmount: req.Amount.InexactFloat64(),
			CurrencyID:        strings.ToUpper(req.Currency),
		},
	}
}
