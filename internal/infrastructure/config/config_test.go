package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PAYMENT_PROVIDER", "REGION_CACHE_TTL", "QUOTES_TABLE", "PAYMENT_GATEWAY_MOCK"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, ProviderStripe, cfg.PaymentProvider)
	assert.Equal(t, 24*time.Hour, cfg.RegionCacheTTL)
	assert.Equal(t, "quotes", cfg.QuotesTable)
	assert.False(t, cfg.PaymentGatewayMock)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("PAYMENT_PROVIDER", "MercadoPago")
	t.Setenv("REGION_CACHE_TTL", "30m")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, ProviderMercadoPago, cfg.PaymentProvider)
	assert.Equal(t, 30*time.Minute, cfg.RegionCacheTTL)
	assert.True(t, cfg.PaymentGatewayMock)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER", "paypal")

	_, err := Load()
	require.Error(t, err)
}

func TestParseDuration_FallsBackOnGarbage(t *testing.T) {
	assert.Equal(t, time.Hour, parseDuration("soon", "1h"))
}
