package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/metrics"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCheckoutPaymentNotFound        = errors.New("checkout payment not found")
	ErrInvalidPaymentReference        = errors.New("invalid payment reference")
	ErrNothingToCharge                = errors.New("quote total is not chargeable")
	ErrInvalidPlan                    = errors.New("invalid plan")
	ErrInvalidInterval                = errors.New("invalid billing interval")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// ICheckoutUseCase opens provider checkouts for quotes and plan subscriptions
// and keeps a payment record per opened session.
type ICheckoutUseCase interface {
	CheckoutQuote(ctx context.Context, quoteID, payerEmail string) (entities.CheckoutPayment, error)
	CheckoutPlan(ctx context.Context, countryCode, plan, interval, payerEmail string) (entities.CheckoutPayment, error)
	ListPaymentsByReference(ctx context.Context, reference string) ([]entities.CheckoutPayment, error)
}

type CheckoutUseCase struct {
	repo      interfaces.ICheckoutPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	mockMode  bool
	now       func() time.Time
	log       *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the use case. With mockMode the gateway is never
// called and sessions are recorded as approved.
func NewCheckoutUseCase(repo interfaces.ICheckoutPaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, mockMode bool) *CheckoutUseCase {
	return &CheckoutUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		mockMode:  mockMode,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logging.Named("checkout.usecase"),
	}
}

func (u *CheckoutUseCase) CheckoutQuote(ctx context.Context, quoteID, payerEmail string) (entities.CheckoutPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	log := u.log.With(zap.String("quote_id", quoteID))
	log.Info("quote checkout start")
	if quoteID == "" {
		return entities.CheckoutPayment{}, ErrInvalidQuoteID
	}
	if err := u.ready(); err != nil {
		log.Error("checkout not ready", zap.Error(err))
		return entities.CheckoutPayment{}, err
	}
	if u.quoteRepo == nil {
		return entities.CheckoutPayment{}, errors.New("quote repository not configured")
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error("failed loading quote", zap.Error(err))
		return entities.CheckoutPayment{}, err
	}
	if q.ID == "" {
		return entities.CheckoutPayment{}, ErrQuoteNotFound
	}

	// The stored quote is the source of truth for the amount.
	summary := pricing.Summarize(q)
	metrics.QuoteSummaries.WithLabelValues("checkout").Inc()
	amount := summary.Totals.GrandTotal.Round(pricing.LookupCurrency(summary.Currency).Decimals)
	if pricing.MinorUnits(amount, summary.Currency) <= 0 {
		log.Info("nothing to charge", zap.String("grand_total", summary.Totals.GrandTotal.String()))
		return entities.CheckoutPayment{}, ErrNothingToCharge
	}

	req := interfaces.CheckoutRequest{
		Reference:   q.ID,
		Description: fmt.Sprintf("Quote %s", q.ID),
		Amount:      amount,
		Currency:    summary.Currency,
		PayerEmail:  strings.TrimSpace(payerEmail),
		Metadata: map[string]string{
			"kind":          string(entities.CheckoutKindQuote),
			"quote_id":      q.ID,
			"quote_version": strconv.FormatInt(q.Version, 10),
		},
	}
	return u.open(ctx, entities.CheckoutKindQuote, req)
}

func (u *CheckoutUseCase) CheckoutPlan(ctx context.Context, countryCode, plan, interval, payerEmail string) (entities.CheckoutPayment, error) {
	kind, ok := pricing.ParsePlanKind(plan)
	if !ok {
		return entities.CheckoutPayment{}, ErrInvalidPlan
	}
	interval, ok = normalizeInterval(interval)
	if !ok {
		return entities.CheckoutPayment{}, ErrInvalidInterval
	}
	if err := u.ready(); err != nil {
		u.log.Error("checkout not ready", zap.Error(err))
		return entities.CheckoutPayment{}, err
	}

	region := pricing.Resolve(countryCode)
	prices := region.Prices(kind)
	amount := prices.Monthly
	if interval == IntervalYear {
		amount = prices.Annual
	}

	req := interfaces.CheckoutRequest{
		Reference:   fmt.Sprintf("plan:%s:%s:%s", region.Tier, kind, interval),
		Description: fmt.Sprintf("%s plan (%s), billed per %s", kind, region.TierName, interval),
		Amount:      amount,
		Currency:    region.Currency,
		Interval:    interval,
		PayerEmail:  strings.TrimSpace(payerEmail),
		Metadata: map[string]string{
			"kind":    string(entities.CheckoutKindPlan),
			"plan":    string(kind),
			"tier":    string(region.Tier),
			"country": region.Country,
		},
	}
	return u.open(ctx, entities.CheckoutKindPlan, req)
}

func (u *CheckoutUseCase) ListPaymentsByReference(ctx context.Context, reference string) ([]entities.CheckoutPayment, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrInvalidPaymentReference
	}
	return u.repo.ListByReference(ctx, reference)
}

func (u *CheckoutUseCase) ready() error {
	if u.repo == nil {
		return errors.New("payment repository not configured")
	}
	if u.gateway == nil && !u.mockMode {
		return errors.New("payment gateway not configured")
	}
	return nil
}

func (u *CheckoutUseCase) providerName() string {
	if u.gateway == nil {
		return "mock"
	}
	return u.gateway.Name()
}

// open calls the provider (or fabricates a session in mock mode) and records the payment.
func (u *CheckoutUseCase) open(ctx context.Context, kind entities.CheckoutKind, req interfaces.CheckoutRequest) (entities.CheckoutPayment, error) {
	provider := u.providerName()
	log := u.log.With(
		zap.String("reference", req.Reference),
		zap.String("provider", provider),
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency),
	)

	var (
		res    interfaces.CheckoutResult
		status entities.PaymentStatus
		err    error
	)
	if u.mockMode {
		log.Info("mock mode enabled; skipping external payment gateway")
		res, err = u.mockCheckout(req)
		if err != nil {
			return entities.CheckoutPayment{}, err
		}
		status = entities.PaymentStatusApproved
	} else {
		log.Info("calling payment gateway")
		res, err = u.gateway.CreateCheckout(ctx, req)
		if err != nil {
			metrics.CheckoutSessions.WithLabelValues(provider, string(kind), "error").Inc()
			log.Error("payment gateway failed", zap.Error(err))
			return entities.CheckoutPayment{}, classifyGatewayError(err)
		}
		status = statusFromProvider(res.ProviderStatus)
	}
	metrics.CheckoutSessions.WithLabelValues(provider, string(kind), string(status)).Inc()
	log.Info("payment gateway success",
		zap.String("provider_payment_id", res.ProviderPaymentID),
		zap.String("provider_status", res.ProviderStatus))

	p := entities.CheckoutPayment{
		ID:                 res.ProviderPaymentID,
		Reference:          req.Reference,
		Kind:               kind,
		Provider:           provider,
		Amount:             req.Amount.StringFixed(pricing.LookupCurrency(req.Currency).Decimals),
		Currency:           req.Currency,
		CheckoutURL:        res.CheckoutURL,
		Date:               u.now(),
		Status:             status,
		ProviderPayloadRaw: res.ProviderResponse,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.CheckoutPayment{}, err
	}
	log.Info("checkout recorded", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *CheckoutUseCase) mockCheckout(req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
	id := "mock_" + strconv.FormatInt(u.now().UnixNano(), 10)
	body, err := json.Marshal(map[string]any{
		"id":           id,
		"status":       "approved",
		"reference":    req.Reference,
		"amount":       req.Amount.String(),
		"currency":     req.Currency,
		"interval":     req.Interval,
		"metadata":     req.Metadata,
		"date_created": u.now().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.CheckoutResult{}, err
	}
	return interfaces.CheckoutResult{
		ProviderPaymentID: id,
		ProviderStatus:    "approved",
		ProviderResponse:  body,
	}, nil
}

func normalizeInterval(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "month", "monthly":
		return IntervalMonth, true
	case "year", "yearly", "annual":
		return IntervalYear, true
	}
	return "", false
}

func statusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "complete", "paid", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "canceled", "expired", "refunded":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
