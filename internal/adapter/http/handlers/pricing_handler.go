package handlers

import (
	"net/http"
	"strings"

	response "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/response"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase"
	"github.com/tellsomethingsomething/tell-quote-sub009/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PricingHandler serves the pricing page: the visitor's tier and local prices.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
	log     *zap.Logger
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc, log: logging.Named("pricing.handler")}
}

// GetRegion godoc
// @Summary      Resolve the visitor's pricing region
// @Description  Country comes from ?country=, edge geo headers, ?tz= or Accept-Language, in that order. Unknown countries get full price in USD.
// @Tags         pricing
// @Produce      json
// @Param        country       query     string  false  "ISO 3166-1 alpha-2 override"
// @Param        tz            query     string  false  "IANA timezone"
// @Param        X-Session-ID  header    string  false  "Visitor session"
// @Success      200           {object}  response.RegionResponse
// @Router       /pricing/region [get]
func (h *PricingHandler) GetRegion(c *gin.Context) {
	country, override := detectCountry(c)
	r, err := h.usecase.ResolveRegion(c.Request.Context(), sessionID(c), country, override)
	if err != nil {
		// Pricing must always render: fall back to a direct resolution.
		h.log.Warn("resolve region failed", zap.String("country", country), zap.Error(err))
		r = pricing.Resolve(country)
	}
	c.JSON(http.StatusOK, response.FromRegion(r))
}

// ListTiers godoc
// @Summary  List pricing tiers with their USD base prices
// @Tags     pricing
// @Produce  json
// @Success  200  {array}  response.TierResponse
// @Router   /pricing/tiers [get]
func (h *PricingHandler) ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTiers(h.usecase.ListTiers()))
}

// FormatPrice godoc
// @Summary  Format an amount for display in a currency
// @Tags     pricing
// @Produce  json
// @Param    amount    query     string  true   "Decimal amount"
// @Param    currency  query     string  false  "ISO 4217 code, USD when unknown"
// @Success  200       {object}  response.FormatResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /pricing/format [get]
func (h *PricingHandler) FormatPrice(c *gin.Context) {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.Query("amount")))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "amount must be a decimal number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	currency := pricing.LookupCurrency(c.Query("currency"))
	c.JSON(http.StatusOK, response.FormatResponse{
		Amount:   amount.StringFixed(currency.Decimals),
		Currency: currency.Code,
		Display:  pricing.DisplayPrice(amount, currency.Code),
	})
}
