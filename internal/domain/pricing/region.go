package pricing

// Region is what the pricing page needs for one visitor: which tier, which
// currency, and the price points to show in it.
type Region struct {
	Country    string     `json:"country"`
	Tier       TierID     `json:"tier"`
	TierName   string     `json:"tier_name"`
	Currency   string     `json:"currency"`
	Individual PlanPrices `json:"individual"`
	Team       PlanPrices `json:"team"`
}

// Resolve combines tier and currency resolution for a country code.
//
// Currency is the country's display currency when the tier has hand-set
// prices for it, otherwise USD, so Individual and Team are always expressed
// in Currency.
func Resolve(countryCode string) Region {
	country := NormalizeCountry(countryCode)
	tier := TierByID(ResolveTier(country))
	local := CurrencyForCountry(country)

	individual, currency := LocalPrices(tier.ID, PlanIndividual, local)
	team, _ := LocalPrices(tier.ID, PlanTeam, currency)

	return Region{
		Country:    country,
		Tier:       tier.ID,
		TierName:   tier.Name,
		Currency:   currency,
		Individual: individual,
		Team:       team,
	}
}

// Prices returns the region's price pair for a plan.
func (r Region) Prices(plan PlanKind) PlanPrices {
	if plan == PlanTeam {
		return r.Team
	}
	return r.Individual
}
