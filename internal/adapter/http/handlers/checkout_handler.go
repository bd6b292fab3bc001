package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	request "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/request"
	response "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/response"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase"
	"github.com/tellsomethingsomething/tell-quote-sub009/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler opens payment-provider sessions for quotes and plans.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	log     *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, log: logging.Named("checkout.handler")}
}

// CheckoutQuote godoc
// @Summary      Pay a quote
// @Description  Charges the stored quote's grand total, recomputed server side.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true   "Quote ID"
// @Param        body  body      request.CheckoutQuoteRequest  false  "Payer"
// @Success      201   {object}  response.CheckoutPaymentResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /checkout/quotes/{id} [post]
func (h *CheckoutHandler) CheckoutQuote(c *gin.Context) {
	quoteID := c.Param("id")
	log := h.log.With(zap.String("quote_id", quoteID))
	log.Info("quote checkout start")

	var payload request.CheckoutQuoteRequest
	if err := readOptionalJSON(c, &payload); err != nil {
		log.Info("invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CheckoutQuote(c.Request.Context(), quoteID, payload.Email)
	if err != nil {
		log.Warn("quote checkout failed", zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("quote checkout success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromCheckoutPayment(created))
}

// CheckoutPlan godoc
// @Summary      Subscribe to a plan at the visitor's regional price
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutPlanRequest  true  "Plan"
// @Success      201   {object}  response.CheckoutPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /checkout/plans [post]
func (h *CheckoutHandler) CheckoutPlan(c *gin.Context) {
	var payload request.CheckoutPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	country := payload.Country
	if country == "" {
		country, _ = detectCountry(c)
	}

	created, err := h.usecase.CheckoutPlan(c.Request.Context(), country, payload.Plan, payload.Interval, payload.Email)
	if err != nil {
		h.log.Warn("plan checkout failed", zap.String("plan", payload.Plan), zap.String("country", country), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("plan checkout success", zap.String("payment_id", created.ID), zap.String("reference", created.Reference))

	c.JSON(http.StatusCreated, response.FromCheckoutPayment(created))
}

// ListPayments godoc
// @Summary  Payments recorded for a quote id or plan reference, newest first
// @Tags     checkout
// @Produce  json
// @Param    reference  path     string  true  "Quote ID or plan reference"
// @Success  200        {array}  response.CheckoutPaymentResponse
// @Failure  404        {object} pkg.HTTPError
// @Router   /checkout/payments/{reference} [get]
func (h *CheckoutHandler) ListPayments(c *gin.Context) {
	reference := c.Param("reference")

	payments, err := h.usecase.ListPaymentsByReference(c.Request.Context(), reference)
	if err != nil {
		h.log.Warn("list payments failed", zap.String("reference", reference), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.FromCheckoutPayments(payments)
	slices.SortStableFunc(out, func(a, b response.CheckoutPaymentResponse) int {
		return b.Date.Compare(a.Date)
	})
	c.JSON(http.StatusOK, out)
}

// readOptionalJSON decodes the body into v unless the body is empty.
func readOptionalJSON(c *gin.Context, v any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if !json.Valid(raw) {
		return errors.New("request body is not valid json")
	}
	return json.Unmarshal(raw, v)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentReference),
		errors.Is(err, usecase.ErrInvalidPlan), errors.Is(err, usecase.ErrInvalidInterval),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller account and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Quote total must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCheckoutPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		if appErr, ok := pkg.AsAppError(err); ok {
			return appErr
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
