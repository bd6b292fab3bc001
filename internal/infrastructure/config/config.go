package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	QuotesTable        string
	PaymentsTable      string

	RedisURL       string
	RegionCacheTTL time.Duration

	PaymentProvider        string
	PaymentGatewayMock     bool
	StripeAPIKey           string
	CheckoutSuccessURL     string
	CheckoutCancelURL      string
	MercadoPagoAccessToken string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:    valueOrDefault(k.String("APP_ENV"), "development"),
		Port:      valueOrDefault(k.String("PORT"), "8080"),
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),

		AWSRegion:          valueOrDefault(k.String("AWS_REGION"), "us-east-1"),
		AWSAccessKeyID:     valueOrDefault(k.String("AWS_ACCESS_KEY_ID"), "local"),
		AWSSecretAccessKey: valueOrDefault(k.String("AWS_SECRET_ACCESS_KEY"), "local"),
		DynamoDBEndpoint:   strings.TrimSpace(k.String("DYNAMODB_ENDPOINT")),
		QuotesTable:        valueOrDefault(k.String("QUOTES_TABLE"), "quotes"),
		PaymentsTable:      valueOrDefault(k.String("PAYMENTS_TABLE"), "payments"),

		RedisURL:       strings.TrimSpace(k.String("REDIS_URL")),
		RegionCacheTTL: parseDuration(k.String("REGION_CACHE_TTL"), "24h"),

		PaymentProvider:        strings.ToLower(valueOrDefault(k.String("PAYMENT_PROVIDER"), ProviderStripe)),
		PaymentGatewayMock:     parseBool(k.String("PAYMENT_GATEWAY_MOCK")),
		StripeAPIKey:           k.String("STRIPE_API_KEY"),
		CheckoutSuccessURL:     valueOrDefault(k.String("CHECKOUT_SUCCESS_URL"), "http://localhost:3000/checkout/success"),
		CheckoutCancelURL:      valueOrDefault(k.String("CHECKOUT_CANCEL_URL"), "http://localhost:3000/checkout/cancel"),
		MercadoPagoAccessToken: k.String("MERCADOPAGO_ACCESS_TOKEN"),
	}

	switch cfg.PaymentProvider {
	case ProviderStripe, ProviderMercadoPago:
	default:
		return nil, fmt.Errorf("PAYMENT_PROVIDER must be %q or %q, got %q", ProviderStripe, ProviderMercadoPago, cfg.PaymentProvider)
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}
