package handlers

import (
	"errors"
	"net/http"

	request "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/request"
	response "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/response"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/metrics"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase"
	"github.com/tellsomethingsomething/tell-quote-sub009/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler serves the quote editor: document CRUD, line items, fees and totals.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, log: logging.Named("quote.handler")}
}

// ComputeTotals godoc
// @Summary      Compute quote totals
// @Description  Stateless totals for a quote held by the client. Nothing is stored.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.TotalsRequest  true  "Quote document"
// @Success      200    {object}  response.SummaryResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes/totals [post]
func (h *QuoteHandler) ComputeTotals(c *gin.Context) {
	var payload request.TotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	metrics.QuoteSummaries.WithLabelValues("stateless").Inc()
	c.JSON(http.StatusOK, response.FromSummary(pricing.Summarize(payload.ToQuote())))
}

// CreateQuote godoc
// @Summary  Create an empty quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote  body      request.CreateQuoteRequest  false  "Display currency"
// @Success  201    {object}  response.QuoteResponse
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := readOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.Currency)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.log.Info("quote created", zap.String("quote_id", q.ID), zap.String("currency", q.Currency))
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetQuote godoc
// @Summary  Get a quote with its summary
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// DeleteQuote godoc
// @Summary  Delete a quote
// @Tags     quotes
// @Param    id  path  string  true  "Quote ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetFees godoc
// @Summary  Set management, commission and discount percentages
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id    path      string               true  "Quote ID"
// @Param    fees  body      request.FeesRequest  true  "Fees"
// @Success  200   {object}  response.QuoteResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /quotes/{id}/fees [put]
func (h *QuoteHandler) SetFees(c *gin.Context) {
	var payload request.FeesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetFees(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AddSection godoc
// @Summary  Add a section
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Quote ID"
// @Param    section  body      request.SectionRequest  true  "Section"
// @Success  201      {object}  response.QuoteResponse
// @Router   /quotes/{id}/sections [post]
func (h *QuoteHandler) AddSection(c *gin.Context) {
	var payload request.SectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, _, err := h.usecase.AddSection(c.Request.Context(), c.Param("id"), payload.Name, payload.Color)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// RemoveSection godoc
// @Summary  Remove a section and its items
// @Tags     quotes
// @Produce  json
// @Param    id          path      string  true  "Quote ID"
// @Param    section_id  path      string  true  "Section ID"
// @Success  200         {object}  response.QuoteResponse
// @Router   /quotes/{id}/sections/{section_id} [delete]
func (h *QuoteHandler) RemoveSection(c *gin.Context) {
	q, err := h.usecase.RemoveSection(c.Request.Context(), c.Param("id"), c.Param("section_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AddLineItem godoc
// @Summary  Add a line item to a section
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id          path      string                   true  "Quote ID"
// @Param    section_id  path      string                   true  "Section ID"
// @Param    item        body      request.LineItemRequest  true  "Line item"
// @Success  201         {object}  response.QuoteResponse
// @Router   /quotes/{id}/sections/{section_id}/items [post]
func (h *QuoteHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, _, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), c.Param("section_id"), payload.Subsection, payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// UpdateLineItem godoc
// @Summary  Replace a line item's values
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id          path      string                   true  "Quote ID"
// @Param    section_id  path      string                   true  "Section ID"
// @Param    item_id     path      string                   true  "Line item ID"
// @Param    item        body      request.LineItemRequest  true  "Line item"
// @Success  200         {object}  response.QuoteResponse
// @Router   /quotes/{id}/sections/{section_id}/items/{item_id} [put]
func (h *QuoteHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, _, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("id"), c.Param("section_id"), c.Param("item_id"), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// RemoveLineItem godoc
// @Summary  Remove a line item
// @Tags     quotes
// @Produce  json
// @Param    id          path      string  true  "Quote ID"
// @Param    section_id  path      string  true  "Section ID"
// @Param    item_id     path      string  true  "Line item ID"
// @Success  200         {object}  response.QuoteResponse
// @Router   /quotes/{id}/sections/{section_id}/items/{item_id} [delete]
func (h *QuoteHandler) RemoveLineItem(c *gin.Context) {
	q, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("section_id"), c.Param("item_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetSummary godoc
// @Summary  Totals, profit, margin and per-section breakdown of a stored quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.SummaryResponse
// @Router   /quotes/{id}/summary [get]
func (h *QuoteHandler) GetSummary(c *gin.Context) {
	s, err := h.usecase.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

func (h *QuoteHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("quote request failed", zap.String("path", c.FullPath()), zap.String("quote_id", c.Param("id")), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidSection):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFees):
		return pkg.NewDomainErrorSimple("INVALID_FEES", "Fees must be percentages between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Quantity and days must be non-negative and amounts finite", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSectionNotFound):
		return pkg.NewDomainErrorSimple("SECTION_NOT_FOUND", "Section not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was modified concurrently, reload and retry", http.StatusConflict)
	default:
		if appErr, ok := pkg.AsAppError(err); ok {
			return appErr
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
