package response

import (
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Cost     float64 `json:"cost"`
	Charge   float64 `json:"charge"`
	Quantity int     `json:"quantity"`
	Days     int     `json:"days"`
}

type SubsectionResponse struct {
	Name  string             `json:"name"`
	Items []LineItemResponse `json:"items"`
}

type SectionResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Color       string               `json:"color,omitempty"`
	Subsections []SubsectionResponse `json:"subsections"`
}

type FeesResponse struct {
	ManagementFee float64 `json:"management_fee"`
	CommissionFee float64 `json:"commission_fee"`
	Discount      float64 `json:"discount"`
}

// TotalsResponse carries amounts as fixed-point strings in the quote currency.
type TotalsResponse struct {
	TotalCost         string `json:"total_cost"`
	TotalCharge       string `json:"total_charge"`
	ManagementAmount  string `json:"management_amount"`
	CommissionAmount  string `json:"commission_amount"`
	DiscountAmount    string `json:"discount_amount"`
	GrandTotal        string `json:"grand_total"`
	Profit            string `json:"profit"`
	MarginPercent     string `json:"margin_percent"`
	GrandTotalDisplay string `json:"grand_total_display"`
}

type SubsectionTotalsResponse struct {
	Name        string `json:"name"`
	TotalCost   string `json:"total_cost"`
	TotalCharge string `json:"total_charge"`
}

type SectionTotalsResponse struct {
	SectionID   string                     `json:"section_id"`
	Name        string                     `json:"name"`
	Color       string                     `json:"color,omitempty"`
	TotalCost   string                     `json:"total_cost"`
	TotalCharge string                     `json:"total_charge"`
	Profit      string                     `json:"profit"`
	Subsections []SubsectionTotalsResponse `json:"subsections"`
}

type SummaryResponse struct {
	Currency string                  `json:"currency"`
	Totals   TotalsResponse          `json:"totals"`
	Sections []SectionTotalsResponse `json:"sections"`
}

type QuoteResponse struct {
	ID        string            `json:"id"`
	Currency  string            `json:"currency"`
	Sections  []SectionResponse `json:"sections"`
	Fees      FeesResponse      `json:"fees"`
	Version   int64             `json:"version"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Summary   SummaryResponse   `json:"summary"`
}

// FromQuote renders the quote in display order together with its freshly
// computed summary.
func FromQuote(q entities.Quote) QuoteResponse {
	ordered := q.OrderedSections()
	sections := make([]SectionResponse, 0, len(ordered))
	for _, s := range ordered {
		sections = append(sections, FromSection(s))
	}
	return QuoteResponse{
		ID:       q.ID,
		Currency: q.Currency,
		Sections: sections,
		Fees: FeesResponse{
			ManagementFee: q.Fees.ManagementFee,
			CommissionFee: q.Fees.CommissionFee,
			Discount:      q.Fees.Discount,
		},
		Version:   q.Version,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		Summary:   FromSummary(pricing.Summarize(q)),
	}
}

func FromSection(s entities.Section) SectionResponse {
	names := s.OrderedSubsections()
	subs := make([]SubsectionResponse, 0, len(names))
	for _, name := range names {
		items := s.Subsections[name]
		out := make([]LineItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, FromLineItem(it))
		}
		subs = append(subs, SubsectionResponse{Name: name, Items: out})
	}
	return SectionResponse{ID: s.ID, Name: s.Name, Color: s.Color, Subsections: subs}
}

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Cost:     it.Cost,
		Charge:   it.Charge,
		Quantity: it.Quantity,
		Days:     it.Days,
	}
}

// FromSummary rounds every amount to the currency's decimal places. The margin
// is always shown with two decimals.
func FromSummary(s pricing.Summary) SummaryResponse {
	places := pricing.LookupCurrency(s.Currency).Decimals
	money := func(d decimal.Decimal) string { return d.StringFixed(places) }

	sections := make([]SectionTotalsResponse, 0, len(s.Sections))
	for _, b := range s.Sections {
		subs := make([]SubsectionTotalsResponse, 0, len(b.Subsections))
		for _, sb := range b.Subsections {
			subs = append(subs, SubsectionTotalsResponse{
				Name:        sb.Name,
				TotalCost:   money(sb.TotalCost),
				TotalCharge: money(sb.TotalCharge),
			})
		}
		sections = append(sections, SectionTotalsResponse{
			SectionID:   b.SectionID,
			Name:        b.Name,
			Color:       b.Color,
			TotalCost:   money(b.TotalCost),
			TotalCharge: money(b.TotalCharge),
			Profit:      money(b.Profit),
			Subsections: subs,
		})
	}

	return SummaryResponse{
		Currency: s.Currency,
		Totals: TotalsResponse{
			TotalCost:         money(s.Totals.TotalCost),
			TotalCharge:       money(s.Totals.TotalCharge),
			ManagementAmount:  money(s.Totals.ManagementAmount),
			CommissionAmount:  money(s.Totals.CommissionAmount),
			DiscountAmount:    money(s.Totals.DiscountAmount),
			GrandTotal:        money(s.Totals.GrandTotal),
			Profit:            money(s.Profit),
			MarginPercent:     s.MarginPercent.StringFixed(2),
			GrandTotalDisplay: pricing.DisplayPrice(s.Totals.GrandTotal, s.Currency),
		},
		Sections: sections,
	}
}
