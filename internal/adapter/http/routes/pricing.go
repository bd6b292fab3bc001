package routes

import (
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/region", pricingHandler.GetRegion)
		pricing.GET("/tiers", pricingHandler.ListTiers)
		pricing.GET("/format", pricingHandler.FormatPrice)
	}
}
