package routes

import (
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/quotes/:id", checkoutHandler.CheckoutQuote)
		checkout.POST("/plans", checkoutHandler.CheckoutPlan)
		checkout.GET("/payments/:reference", checkoutHandler.ListPayments)
	}
}
