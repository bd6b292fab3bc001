package response

import (
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
)

type PlanPriceResponse struct {
	Monthly        string `json:"monthly"`
	Annual         string `json:"annual"`
	MonthlyDisplay string `json:"monthly_display"`
	AnnualDisplay  string `json:"annual_display"`
}

type RegionResponse struct {
	Country    string            `json:"country"`
	Tier       string            `json:"tier"`
	TierName   string            `json:"tier_name"`
	Currency   string            `json:"currency"`
	Individual PlanPriceResponse `json:"individual"`
	Team       PlanPriceResponse `json:"team"`
}

type TierResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Countries  []string          `json:"countries"`
	Individual PlanPriceResponse `json:"individual"`
	Team       PlanPriceResponse `json:"team"`
}

type FormatResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

func FromPlanPrices(p pricing.PlanPrices, currency string) PlanPriceResponse {
	places := pricing.LookupCurrency(currency).Decimals
	return PlanPriceResponse{
		Monthly:        p.Monthly.StringFixed(places),
		Annual:         p.Annual.StringFixed(places),
		MonthlyDisplay: pricing.DisplayPrice(p.Monthly, currency),
		AnnualDisplay:  pricing.DisplayPrice(p.Annual, currency),
	}
}

func FromRegion(r pricing.Region) RegionResponse {
	return RegionResponse{
		Country:    r.Country,
		Tier:       string(r.Tier),
		TierName:   r.TierName,
		Currency:   r.Currency,
		Individual: FromPlanPrices(r.Individual, r.Currency),
		Team:       FromPlanPrices(r.Team, r.Currency),
	}
}

// FromTiers lists base prices, which are always USD.
func FromTiers(tiers []pricing.Tier) []TierResponse {
	out := make([]TierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, TierResponse{
			ID:         string(t.ID),
			Name:       t.Name,
			Countries:  t.Countries,
			Individual: FromPlanPrices(t.Individual, pricing.DefaultCurrency),
			Team:       FromPlanPrices(t.Team, pricing.DefaultCurrency),
		})
	}
	return out
}
