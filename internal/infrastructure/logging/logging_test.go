package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withLogger(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var buf bytes.Buffer
	cfg.Output = &buf
	require.NoError(t, Initialize(cfg))
	return &buf
}

func TestInitialize_LevelFilters(t *testing.T) {
	buf := withLogger(t, Config{Level: "warn", Format: "json"})

	Named("test").Info("hidden")
	Named("test").Warn("shown", zap.String("k", "v"))
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "test", entry["logger"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitialize_RejectsUnknownLevel(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	err := Initialize(Config{Level: "loud"})
	assert.Error(t, err)
	assert.Same(t, prev, Logger)
}

func TestInitialize_EmptyLevelDefaultsToInfo(t *testing.T) {
	buf := withLogger(t, Config{Format: "console"})

	Named("test").Debug("hidden")
	Named("test").Info("shown")
	Sync()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGinMiddleware(t *testing.T) {
	buf := withLogger(t, Config{Level: "info"})
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/v1/quotes/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil))
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http_request", entry["msg"])
	assert.Equal(t, "/v1/quotes/:id", entry["route"])
	assert.Equal(t, float64(http.StatusNoContent), entry["status"])
}
