package routes

import (
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Stateless calculator: nothing is stored.
		quotes.POST("/totals", quoteHandler.ComputeTotals)

		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.GET("/:id/summary", quoteHandler.GetSummary)
		quotes.PUT("/:id/fees", quoteHandler.SetFees)

		quotes.POST("/:id/sections", quoteHandler.AddSection)
		quotes.DELETE("/:id/sections/:section_id", quoteHandler.RemoveSection)
		quotes.POST("/:id/sections/:section_id/items", quoteHandler.AddLineItem)
		quotes.PUT("/:id/sections/:section_id/items/:item_id", quoteHandler.UpdateLineItem)
		quotes.DELETE("/:id/sections/:section_id/items/:item_id", quoteHandler.RemoveLineItem)
	}
}
