package pricing

import (
	"math"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals are derived from a quote and never stored.
type Totals struct {
	TotalCost        decimal.Decimal `json:"total_cost"`
	TotalCharge      decimal.Decimal `json:"total_charge"`
	ManagementAmount decimal.Decimal `json:"management_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
}

// SubsectionBreakdown is the cost/charge subtotal of one subsection.
type SubsectionBreakdown struct {
	Name        string          `json:"name"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalCharge decimal.Decimal `json:"total_charge"`
}

// SectionBreakdown is the cost/charge subtotal of one section.
type SectionBreakdown struct {
	SectionID   string                `json:"section_id"`
	Name        string                `json:"name"`
	Color       string                `json:"color,omitempty"`
	TotalCost   decimal.Decimal       `json:"total_cost"`
	TotalCharge decimal.Decimal       `json:"total_charge"`
	Profit      decimal.Decimal       `json:"profit"`
	Subsections []SubsectionBreakdown `json:"subsections"`
}

// Summary is everything a summary screen, PDF or checkout needs from a quote.
type Summary struct {
	Currency      string             `json:"currency"`
	Totals        Totals             `json:"totals"`
	Profit        decimal.Decimal    `json:"profit"`
	MarginPercent decimal.Decimal    `json:"margin_percent"`
	Sections      []SectionBreakdown `json:"sections"`
}

// ComputeTotals aggregates every line item of every section and applies fees.
//
// Management, commission and discount are all percentages of the pre-fee
// charge subtotal; the discount is subtracted last and is not compounded on
// the other fees.
func ComputeTotals(sections map[string]entities.Section, fees entities.Fees) Totals {
	totalCost := decimal.Zero
	totalCharge := decimal.Zero
	for _, s := range sections {
		for _, items := range s.Subsections {
			cost, charge := sumItems(items)
			totalCost = totalCost.Add(cost)
			totalCharge = totalCharge.Add(charge)
		}
	}
	return applyFees(totalCost, totalCharge, fees)
}

func applyFees(totalCost, totalCharge decimal.Decimal, fees entities.Fees) Totals {
	management := percentOf(totalCharge, fees.ManagementFee)
	commission := percentOf(totalCharge, fees.CommissionFee)
	discount := percentOf(totalCharge, fees.Discount)

	return Totals{
		TotalCost:        totalCost,
		TotalCharge:      totalCharge,
		ManagementAmount: management,
		CommissionAmount: commission,
		DiscountAmount:   discount,
		GrandTotal:       totalCharge.Add(management).Add(commission).Sub(discount),
	}
}

// SectionTotals aggregates a single section with the same extended-cost
// formula ComputeTotals uses.
func SectionTotals(s entities.Section) SectionBreakdown {
	out := SectionBreakdown{
		SectionID:   s.ID,
		Name:        s.Name,
		Color:       s.Color,
		TotalCost:   decimal.Zero,
		TotalCharge: decimal.Zero,
		Subsections: make([]SubsectionBreakdown, 0, len(s.Subsections)),
	}
	for _, name := range s.OrderedSubsections() {
		cost, charge := sumItems(s.Subsections[name])
		out.Subsections = append(out.Subsections, SubsectionBreakdown{Name: name, TotalCost: cost, TotalCharge: charge})
		out.TotalCost = out.TotalCost.Add(cost)
		out.TotalCharge = out.TotalCharge.Add(charge)
	}
	out.Profit = out.TotalCharge.Sub(out.TotalCost)
	return out
}

// Profit is charge minus cost.
func Profit(t Totals) decimal.Decimal {
	return t.TotalCharge.Sub(t.TotalCost)
}

// MarginPercent is profit as a percentage of charge, 0 when there is no charge.
func MarginPercent(t Totals) decimal.Decimal {
	if !t.TotalCharge.IsPositive() {
		return decimal.Zero
	}
	return Profit(t).Div(t.TotalCharge).Mul(hundred)
}

// Summarize computes totals, profit, margin and the per-section breakdown in
// display order.
func Summarize(q entities.Quote) Summary {
	totals := ComputeTotals(q.Sections, q.Fees)
	ordered := q.OrderedSections()
	breakdown := make([]SectionBreakdown, 0, len(ordered))
	for _, s := range ordered {
		breakdown = append(breakdown, SectionTotals(s))
	}
	currency := q.Currency
	if !KnownCurrency(currency) {
		currency = DefaultCurrency
	}
	return Summary{
		Currency:      currency,
		Totals:        totals,
		Profit:        Profit(totals),
		MarginPercent: MarginPercent(totals),
		Sections:      breakdown,
	}
}

func sumItems(items []entities.LineItem) (cost, charge decimal.Decimal) {
	cost, charge = decimal.Zero, decimal.Zero
	for _, it := range items {
		c, ch := extended(it)
		cost = cost.Add(c)
		charge = charge.Add(ch)
	}
	return cost, charge
}

// extended returns cost×quantity×days and charge×quantity×days. Malformed
// values contribute zero instead of failing the whole quote.
func extended(it entities.LineItem) (cost, charge decimal.Decimal) {
	if it.Quantity <= 0 || it.Days <= 0 {
		return decimal.Zero, decimal.Zero
	}
	mult := decimal.NewFromInt(int64(it.Quantity)).Mul(decimal.NewFromInt(int64(it.Days)))
	return finite(it.Cost).Mul(mult), finite(it.Charge).Mul(mult)
}

func percentOf(base decimal.Decimal, pct float64) decimal.Decimal {
	p := finite(pct)
	if p.IsNegative() {
		p = decimal.Zero
	}
	if p.GreaterThan(hundred) {
		p = hundred
	}
	return base.Mul(p.Shift(-2))
}

func finite(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
