package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SymbolPosition says where the currency symbol goes relative to the amount.
type SymbolPosition int

const (
	SymbolBefore SymbolPosition = iota
	SymbolAfter
)

// DefaultCurrency is the fallback for unknown countries and currency codes.
const DefaultCurrency = "USD"

// Currency describes how amounts in a currency are displayed and charged.
// Decimals is the display precision; MinorDigits is the ISO 4217 exponent
// payment providers count minor units in. IDR shows no decimals but is still
// charged in hundredths.
type Currency struct {
	Code         string
	Symbol       string
	Decimals     int32
	MinorDigits  int32
	Position     SymbolPosition
	Spaced       bool // space between symbol and amount
	ThousandsSep string
	DecimalSep   string
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Decimals: 2, MinorDigits: 2},
	"EUR": {Code: "EUR", Symbol: "€", Decimals: 2, MinorDigits: 2},
	"GBP": {Code: "GBP", Symbol: "£", Decimals: 2, MinorDigits: 2},
	"CAD": {Code: "CAD", Symbol: "CA$", Decimals: 2, MinorDigits: 2},
	"AUD": {Code: "AUD", Symbol: "A$", Decimals: 2, MinorDigits: 2},
	"NZD": {Code: "NZD", Symbol: "NZ$", Decimals: 2, MinorDigits: 2},
	"SGD": {Code: "SGD", Symbol: "S$", Decimals: 2, MinorDigits: 2},
	"HKD": {Code: "HKD", Symbol: "HK$", Decimals: 2, MinorDigits: 2},
	"CHF": {Code: "CHF", Symbol: "CHF", Decimals: 2, MinorDigits: 2, Spaced: true, ThousandsSep: "'"},
	"SEK": {Code: "SEK", Symbol: "kr", Decimals: 2, MinorDigits: 2, Position: SymbolAfter, Spaced: true, ThousandsSep: " ", DecimalSep: ","},
	"NOK": {Code: "NOK", Symbol: "kr", Decimals: 2, MinorDigits: 2, Position: SymbolAfter, Spaced: true, ThousandsSep: " ", DecimalSep: ","},
	"DKK": {Code: "DKK", Symbol: "kr.", Decimals: 2, MinorDigits: 2, Position: SymbolAfter, Spaced: true, ThousandsSep: ".", DecimalSep: ","},
	"JPY": {Code: "JPY", Symbol: "¥", Decimals: 0, MinorDigits: 0},
	"KRW": {Code: "KRW", Symbol: "₩", Decimals: 0, MinorDigits: 0},
	"CNY": {Code: "CNY", Symbol: "¥", Decimals: 2, MinorDigits: 2},
	"AED": {Code: "AED", Symbol: "AED", Decimals: 2, MinorDigits: 2, Spaced: true},
	"SAR": {Code: "SAR", Symbol: "SAR", Decimals: 2, MinorDigits: 2, Spaced: true},
	"MYR": {Code: "MYR", Symbol: "RM", Decimals: 2, MinorDigits: 2},
	"THB": {Code: "THB", Symbol: "฿", Decimals: 2, MinorDigits: 2},
	"IDR": {Code: "IDR", Symbol: "Rp", Decimals: 0, MinorDigits: 2, Spaced: true, ThousandsSep: "."},
	"PHP": {Code: "PHP", Symbol: "₱", Decimals: 2, MinorDigits: 2},
	"VND": {Code: "VND", Symbol: "₫", Decimals: 0, MinorDigits: 0, Position: SymbolAfter, ThousandsSep: "."},
	"INR": {Code: "INR", Symbol: "₹", Decimals: 2, MinorDigits: 2},
	"PKR": {Code: "PKR", Symbol: "Rs", Decimals: 0, MinorDigits: 2, Spaced: true},
	"BDT": {Code: "BDT", Symbol: "৳", Decimals: 0, MinorDigits: 2},
	"LKR": {Code: "LKR", Symbol: "Rs", Decimals: 0, MinorDigits: 2, Spaced: true},
	"BRL": {Code: "BRL", Symbol: "R$", Decimals: 2, MinorDigits: 2, Spaced: true, ThousandsSep: ".", DecimalSep: ","},
	"MXN": {Code: "MXN", Symbol: "MX$", Decimals: 2, MinorDigits: 2},
	"ZAR": {Code: "ZAR", Symbol: "R", Decimals: 2, MinorDigits: 2, ThousandsSep: " "},
	"TRY": {Code: "TRY", Symbol: "₺", Decimals: 2, MinorDigits: 2, ThousandsSep: ".", DecimalSep: ","},
	"PLN": {Code: "PLN", Symbol: "zł", Decimals: 2, MinorDigits: 2, Position: SymbolAfter, Spaced: true, ThousandsSep: " ", DecimalSep: ","},
	"NGN": {Code: "NGN", Symbol: "₦", Decimals: 0, MinorDigits: 2},
	"KES": {Code: "KES", Symbol: "KSh", Decimals: 0, MinorDigits: 2, Spaced: true},
	"EGP": {Code: "EGP", Symbol: "E£", Decimals: 0, MinorDigits: 2},
}

var countryCurrency = map[string]string{
	"US": "USD",
	"GB": "GBP",
	"CA": "CAD",
	"AU": "AUD",
	"NZ": "NZD",
	"SG": "SGD",
	"HK": "HKD",
	"CH": "CHF",
	"SE": "SEK",
	"NO": "NOK",
	"DK": "DKK",
	"JP": "JPY",
	"KR": "KRW",
	"CN": "CNY",
	"AE": "AED",
	"SA": "SAR",
	"MY": "MYR",
	"TH": "THB",
	"ID": "IDR",
	"PH": "PHP",
	"VN": "VND",
	"IN": "INR",
	"PK": "PKR",
	"BD": "BDT",
	"LK": "LKR",
	"BR": "BRL",
	"MX": "MXN",
	"ZA": "ZAR",
	"TR": "TRY",
	"PL": "PLN",
	"NG": "NGN",
	"KE": "KES",
	"EG": "EGP",

	// euro area
	"AT": "EUR", "BE": "EUR", "CY": "EUR", "DE": "EUR", "EE": "EUR", "ES": "EUR",
	"FI": "EUR", "FR": "EUR", "GR": "EUR", "HR": "EUR", "IE": "EUR", "IT": "EUR",
	"LT": "EUR", "LU": "EUR", "LV": "EUR", "MT": "EUR", "NL": "EUR", "PT": "EUR",
	"SI": "EUR", "SK": "EUR",
}

// CurrencyForCountry returns the display currency for a country, USD when unmapped.
func CurrencyForCountry(countryCode string) string {
	if c, ok := countryCurrency[NormalizeCountry(countryCode)]; ok {
		return c
	}
	return DefaultCurrency
}

// LookupCurrency returns the currency record for code, or USD's when unknown.
func LookupCurrency(code string) Currency {
	if c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return currencies[DefaultCurrency]
}

// KnownCurrency reports whether code has a display record.
func KnownCurrency(code string) bool {
	_, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// localPrices are hand-set per tier and currency. Prices are never FX-converted:
// a currency with no entry here is shown in USD.
var localPrices = map[TierID]map[string]struct{ Individual, Team PlanPrices }{
	Tier1: {
		"GBP": {Individual: prices(19, 190), Team: prices(39, 390)},
		"EUR": {Individual: prices(22, 220), Team: prices(45, 450)},
		"CAD": {Individual: prices(32, 320), Team: prices(65, 650)},
		"AUD": {Individual: prices(36, 360), Team: prices(75, 750)},
		"NZD": {Individual: prices(39, 390), Team: prices(79, 790)},
		"SGD": {Individual: prices(32, 320), Team: prices(65, 650)},
		"HKD": {Individual: prices(189, 1890), Team: prices(389, 3890)},
		"CHF": {Individual: prices(22, 220), Team: prices(45, 450)},
		"SEK": {Individual: prices(249, 2490), Team: prices(499, 4990)},
		"NOK": {Individual: prices(249, 2490), Team: prices(499, 4990)},
		"DKK": {Individual: prices(169, 1690), Team: prices(339, 3390)},
		"JPY": {Individual: prices(3500, 35000), Team: prices(7200, 72000)},
		"AED": {Individual: prices(89, 890), Team: prices(179, 1790)},
	},
	Tier2: {
		"EUR": {Individual: prices(17, 170), Team: prices(35, 350)},
		"KRW": {Individual: prices(25000, 250000), Team: prices(52000, 520000)},
		"SAR": {Individual: prices(69, 690), Team: prices(145, 1450)},
		"PLN": {Individual: prices(75, 750), Team: prices(155, 1550)},
	},
	Tier3: {
		"MYR": {Individual: prices(59, 590), Team: prices(129, 1290)},
		"THB": {Individual: prices(449, 4490), Team: prices(949, 9490)},
		"CNY": {Individual: prices(99, 990), Team: prices(199, 1990)},
		"BRL": {Individual: prices(69, 690), Team: prices(149, 1490)},
		"MXN": {Individual: prices(249, 2490), Team: prices(499, 4990)},
		"ZAR": {Individual: prices(249, 2490), Team: prices(529, 5290)},
		"TRY": {Individual: prices(449, 4490), Team: prices(949, 9490)},
	},
	Tier4: {
		"INR": {Individual: prices(699, 6990), Team: prices(1499, 14990)},
		"IDR": {Individual: prices(139000, 1390000), Team: prices(299000, 2990000)},
		"PHP": {Individual: prices(499, 4990), Team: prices(1049, 10490)},
		"VND": {Individual: prices(219000, 2190000), Team: prices(459000, 4590000)},
		"LKR": {Individual: prices(2700, 27000), Team: prices(5700, 57000)},
		"EGP": {Individual: prices(449, 4490), Team: prices(949, 9490)},
	},
	Tier5: {
		"PKR": {Individual: prices(1400, 14000), Team: prices(3300, 33000)},
		"BDT": {Individual: prices(590, 5900), Team: prices(1400, 14000)},
		"NGN": {Individual: prices(7500, 75000), Team: prices(18000, 180000)},
		"KES": {Individual: prices(650, 6500), Team: prices(1550, 15500)},
	},
}

// LocalPrices returns the hand-set local price points of a plan in a tier and
// the currency they are expressed in. Without an override for currencyCode the
// USD base prices are returned with "USD".
func LocalPrices(id TierID, plan PlanKind, currencyCode string) (PlanPrices, string) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if byCurrency, ok := localPrices[TierByID(id).ID]; ok {
		if lp, ok := byCurrency[code]; ok {
			if plan == PlanTeam {
				return lp.Team, code
			}
			return lp.Individual, code
		}
	}
	return PricesForTier(id, plan), DefaultCurrency
}

// MinorUnits converts amount to the currency's ISO 4217 minor unit (cents for
// USD, yen for JPY, sen for IDR), rounding half away from zero.
func MinorUnits(amount decimal.Decimal, currencyCode string) int64 {
	c := LookupCurrency(currencyCode)
	return amount.Round(c.MinorDigits).Shift(c.MinorDigits).IntPart()
}
