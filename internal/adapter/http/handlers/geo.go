package handlers

import (
	"strings"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

// SessionHeader identifies the visitor session the resolved region is cached under.
const SessionHeader = "X-Session-ID"

// countryHeaders are set by the CDN or edge runtime in front of the API.
var countryHeaders = []string{
	"CF-IPCountry",
	"X-Vercel-IP-Country",
	"CloudFront-Viewer-Country",
	"X-Country-Code",
}

// detectCountry finds the visitor's country. override is true only for an
// explicit ?country= query, which bypasses the session cache.
func detectCountry(c *gin.Context) (country string, override bool) {
	if q := pricing.NormalizeCountry(c.Query("country")); q != "" {
		return q, true
	}
	for _, h := range countryHeaders {
		// Cloudflare reports unknown or Tor traffic as XX / T1.
		if v := pricing.NormalizeCountry(c.GetHeader(h)); v != "" && v != "XX" {
			return v, false
		}
	}
	if v := pricing.CountryForTimezone(c.Query("tz")); v != "" {
		return v, false
	}
	return pricing.CountryFromAcceptLanguage(c.GetHeader("Accept-Language")), false
}

func sessionID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(SessionHeader)); v != "" {
		return v
	}
	return strings.TrimSpace(c.Query("session_id"))
}
