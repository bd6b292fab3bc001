// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QuoteSummaries counts totals recomputations by caller.
	QuoteSummaries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quote",
		Name:      "summaries_total",
		Help:      "Quote totals computations.",
	}, []string{"source"})

	// RegionResolutions counts region lookups by tier and whether the session cache served them.
	RegionResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricing",
		Name:      "region_resolutions_total",
		Help:      "Region/tier resolutions.",
	}, []string{"tier", "cache"})

	// CheckoutSessions counts provider checkout attempts.
	CheckoutSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "sessions_total",
		Help:      "Checkout sessions opened with a payment provider.",
	}, []string{"provider", "kind", "outcome"})
)

// Handler exposes the default registry for gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
