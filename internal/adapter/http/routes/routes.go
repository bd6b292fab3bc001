package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "github.com/tellsomethingsomething/tell-quote-sub009/docs"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/handlers"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/persistence/repository"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/cache"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/config"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/database"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/metrics"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/payments"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the adapters the use cases run on.
type Dependencies struct {
	Quotes   interfaces.IQuoteRepository
	Payments interfaces.ICheckoutPaymentRepository
	Regions  interfaces.IRegionCache
	Gateway  interfaces.IPaymentGateway
}

// Run connects the infrastructure, serves HTTP on cfg.HTTPAddr() and shuts
// down gracefully when ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logging.Named("routes")

	deps, closeDeps, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDeps()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           NewRouter(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	quoteUseCase := usecase.NewQuoteUseCase(deps.Quotes)
	pricingUseCase := usecase.NewPricingUseCase(deps.Regions)
	checkoutUseCase := usecase.NewCheckoutUseCase(deps.Payments, deps.Quotes, deps.Gateway, cfg.PaymentGatewayMock)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, pricingHandler)
	addQuoteRoutes(v1, quoteHandler)
	addCheckoutRoutes(v1, checkoutHandler)

	return router
}

func connect(ctx context.Context, cfg *config.Config) (Dependencies, func(), error) {
	log := logging.Named("routes")
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Dependencies{}, closeAll, err
	}

	deps := Dependencies{
		Quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable),
		Payments: repository.NewCheckoutPaymentDynamoRepository(ddb, cfg.PaymentsTable),
	}

	// Pricing must render even without Redis, so fall back to process memory.
	deps.Regions = pricing.NewSessionCache(cfg.RegionCacheTTL)
	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, using in-memory region cache", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			deps.Regions = repository.NewRegionRedisCache(rdb, cfg.RegionCacheTTL)
		}
	}

	if cfg.PaymentGatewayMock {
		log.Info("payment gateway mock mode enabled")
		return deps, closeAll, nil
	}
	gateway, err := newPaymentGateway(cfg)
	if err != nil {
		log.Warn("payment gateway not configured", zap.String("provider", cfg.PaymentProvider), zap.Error(err))
	} else {
		deps.Gateway = gateway
	}
	return deps, closeAll, nil
}

func newPaymentGateway(cfg *config.Config) (interfaces.IPaymentGateway, error) {
	switch cfg.PaymentProvider {
	case config.ProviderMercadoPago:
		return payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	default:
		return payments.NewStripeGateway(cfg.StripeAPIKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logging.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.Named("http").Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
