package pricing

import "strings"

// timezoneCountry backs the browser-timezone heuristic used when no edge
// header carries the visitor's country.
var timezoneCountry = map[string]string{
	"America/New_York":    "US",
	"America/Chicago":     "US",
	"America/Denver":      "US",
	"America/Los_Angeles": "US",
	"America/Phoenix":     "US",
	"America/Anchorage":   "US",
	"Pacific/Honolulu":    "US",
	"America/Toronto":     "CA",
	"America/Vancouver":   "CA",
	"America/Mexico_City": "MX",
	"America/Sao_Paulo":   "BR",
	"America/Bogota":      "CO",
	"America/Lima":        "PE",
	"America/Santiago":    "CL",
	"Europe/London":       "GB",
	"Europe/Dublin":       "IE",
	"Europe/Paris":        "FR",
	"Europe/Berlin":       "DE",
	"Europe/Madrid":       "ES",
	"Europe/Rome":         "IT",
	"Europe/Lisbon":       "PT",
	"Europe/Amsterdam":    "NL",
	"Europe/Brussels":     "BE",
	"Europe/Zurich":       "CH",
	"Europe/Vienna":       "AT",
	"Europe/Stockholm":    "SE",
	"Europe/Oslo":         "NO",
	"Europe/Copenhagen":   "DK",
	"Europe/Helsinki":     "FI",
	"Europe/Warsaw":       "PL",
	"Europe/Prague":       "CZ",
	"Europe/Athens":       "GR",
	"Europe/Istanbul":     "TR",
	"Europe/Kyiv":         "UA",
	"Europe/Kiev":         "UA",
	"Africa/Cairo":        "EG",
	"Africa/Lagos":        "NG",
	"Africa/Nairobi":      "KE",
	"Africa/Johannesburg": "ZA",
	"Africa/Casablanca":   "MA",
	"Asia/Dubai":          "AE",
	"Asia/Riyadh":         "SA",
	"Asia/Qatar":          "QA",
	"Asia/Karachi":        "PK",
	"Asia/Kolkata":        "IN",
	"Asia/Calcutta":       "IN",
	"Asia/Colombo":        "LK",
	"Asia/Dhaka":          "BD",
	"Asia/Kathmandu":      "NP",
	"Asia/Bangkok":        "TH",
	"Asia/Ho_Chi_Minh":    "VN",
	"Asia/Saigon":         "VN",
	"Asia/Jakarta":        "ID",
	"Asia/Kuala_Lumpur":   "MY",
	"Asia/Kuching":        "MY",
	"Asia/Singapore":      "SG",
	"Asia/Manila":         "PH",
	"Asia/Hong_Kong":      "HK",
	"Asia/Shanghai":       "CN",
	"Asia/Taipei":         "TW",
	"Asia/Seoul":          "KR",
	"Asia/Tokyo":          "JP",
	"Australia/Sydney":    "AU",
	"Australia/Melbourne": "AU",
	"Australia/Brisbane":  "AU",
	"Australia/Perth":     "AU",
	"Pacific/Auckland":    "NZ",

	"America/Argentina/Buenos_Aires": "AR",
}

// CountryForTimezone maps an IANA timezone to a country code, "" when unknown.
func CountryForTimezone(tz string) string {
	return timezoneCountry[strings.TrimSpace(tz)]
}

// CountryFromAcceptLanguage returns the region subtag of the first language
// range that carries one, e.g. "en-MY,en;q=0.9" gives "MY".
func CountryFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		subtags := strings.Split(tag, "-")
		for _, st := range subtags[1:] {
			if c := NormalizeCountry(st); c != "" {
				return c
			}
		}
	}
	return ""
}
