// Package pricing holds the regional pricing tables and the quote totals math.
//
// Everything in here is a pure function over immutable package tables, so it
// is safe for concurrent use and never fails: unknown inputs resolve to
// documented defaults.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TierID identifies a purchasing-power pricing tier.
type TierID string

const (
	Tier1 TierID = "tier1" // premium, full price
	Tier2 TierID = "tier2"
	Tier3 TierID = "tier3"
	Tier4 TierID = "tier4"
	Tier5 TierID = "tier5" // lowest income
)

// DefaultTier is returned for any country no tier lists.
const DefaultTier = Tier1

// PlanKind selects the subscription plan a price belongs to.
type PlanKind string

const (
	PlanIndividual PlanKind = "individual"
	PlanTeam       PlanKind = "team"
)

// ParsePlanKind accepts the plan kind in any case.
func ParsePlanKind(s string) (PlanKind, bool) {
	switch PlanKind(strings.ToLower(strings.TrimSpace(s))) {
	case PlanIndividual:
		return PlanIndividual, true
	case PlanTeam:
		return PlanTeam, true
	}
	return "", false
}

// PlanPrices is a monthly/annual price pair.
type PlanPrices struct {
	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}

// Tier is one row of the canonical tier table. Base prices are USD.
type Tier struct {
	ID         TierID
	Name       string
	Countries  []string
	Individual PlanPrices
	Team       PlanPrices
}

func prices(monthly, annual int64) PlanPrices {
	return PlanPrices{Monthly: decimal.NewFromInt(monthly), Annual: decimal.NewFromInt(annual)}
}

// tierTable is ordered: lookups are first-match-wins.
var tierTable = []Tier{
	{
		ID:   Tier1,
		Name: "Premium",
		Countries: []string{
			"US", "CA", "GB", "IE", "AU", "NZ", "DE", "FR", "NL", "BE", "LU", "AT", "CH",
			"DK", "SE", "NO", "FI", "IS", "SG", "HK", "JP", "AE", "QA", "KW", "IL",
		},
		Individual: prices(24, 240),
		Team:       prices(49, 490),
	},
	{
		ID:   Tier2,
		Name: "High income",
		Countries: []string{
			"ES", "IT", "PT", "GR", "CY", "MT", "SI", "EE", "LV", "LT", "CZ", "SK", "PL",
			"HU", "HR", "KR", "TW", "SA", "BH", "OM", "CL", "UY",
		},
		Individual: prices(19, 190),
		Team:       prices(39, 390),
	},
	{
		ID:   Tier3,
		Name: "Upper-middle income",
		Countries: []string{
			"MY", "TH", "CN", "MX", "BR", "AR", "TR", "RO", "BG", "RS", "ZA", "CR", "PA",
			"KZ", "CO", "PE", "DO", "BW", "MU", "MV", "BN",
		},
		Individual: prices(14, 140),
		Team:       prices(29, 290),
	},
	{
		ID:   Tier4,
		Name: "Lower-middle income",
		Countries: []string{
			"ID", "PH", "VN", "IN", "LK", "EG", "MA", "TN", "DZ", "JO", "UA", "GE", "AM",
			"BO", "PY", "EC", "GT", "SV", "HN", "MN",
		},
		Individual: prices(9, 90),
		Team:       prices(19, 190),
	},
	{
		ID:   Tier5,
		Name: "Low income",
		Countries: []string{
			"BD", "PK", "NP", "MM", "KH", "LA", "NG", "KE", "GH", "ET", "TZ", "UG", "RW",
			"ZM", "ZW", "SN", "CM", "HT", "NI",
		},
		Individual: prices(5, 50),
		Team:       prices(12, 120),
	},
}

var (
	tierByCountry = buildTierIndex(tierTable)
	tierByID      = buildTierByID(tierTable)
)

func buildTierIndex(table []Tier) map[string]TierID {
	idx := make(map[string]TierID)
	for _, t := range table {
		for _, c := range t.Countries {
			if _, taken := idx[c]; taken {
				continue
			}
			idx[c] = t.ID
		}
	}
	return idx
}

func buildTierByID(table []Tier) map[TierID]Tier {
	out := make(map[TierID]Tier, len(table))
	for _, t := range table {
		out[t.ID] = t
	}
	return out
}

// Tiers returns a copy of the canonical tier table in order.
func Tiers() []Tier {
	out := make([]Tier, len(tierTable))
	for i, t := range tierTable {
		t.Countries = append([]string(nil), t.Countries...)
		out[i] = t
	}
	return out
}

// TierByID returns the tier row, falling back to the default tier.
func TierByID(id TierID) Tier {
	if t, ok := tierByID[id]; ok {
		return t
	}
	return tierByID[DefaultTier]
}

// Valid reports whether id names a tier in the table.
func (id TierID) Valid() bool {
	_, ok := tierByID[id]
	return ok
}

// NormalizeCountry upper-cases and trims a country code. Anything that is not
// two ASCII letters comes back as "".
func NormalizeCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	for i := 0; i < 2; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return ""
		}
	}
	return code
}

// ResolveTier maps a country code to its tier. Unlisted or malformed codes get
// DefaultTier.
func ResolveTier(countryCode string) TierID {
	if id, ok := tierByCountry[NormalizeCountry(countryCode)]; ok {
		return id
	}
	return DefaultTier
}

// PricesForTier returns the USD base prices of a plan in a tier. An unknown
// plan kind is priced as individual.
func PricesForTier(id TierID, plan PlanKind) PlanPrices {
	t := TierByID(id)
	if plan == PlanTeam {
		return t.Team
	}
	return t.Individual
}
