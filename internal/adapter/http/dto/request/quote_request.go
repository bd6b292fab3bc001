package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
)

type CreateQuoteRequest struct {
	Currency string `json:"currency"`
}

// FeesRequest carries the quote-wide percentages. Omitted fees are 0.
type FeesRequest struct {
	ManagementFee float64 `json:"management_fee"`
	CommissionFee float64 `json:"commission_fee"`
	Discount      float64 `json:"discount"`
}

func (r FeesRequest) ToEntity() entities.Fees {
	return entities.Fees{
		ManagementFee: r.ManagementFee,
		CommissionFee: r.CommissionFee,
		Discount:      r.Discount,
	}
}

type SectionRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// LineItemRequest is one priced row. Subsection is only read when adding an
// item; updates keep the item where it is.
type LineItemRequest struct {
	Name       string  `json:"name"`
	Subsection string  `json:"subsection"`
	Cost       float64 `json:"cost"`
	Charge     float64 `json:"charge"`
	Quantity   int     `json:"quantity"`
	Days       int     `json:"days"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		Name:     strings.TrimSpace(r.Name),
		Cost:     r.Cost,
		Charge:   r.Charge,
		Quantity: r.Quantity,
		Days:     r.Days,
	}
}

// TotalsLineItem is a row of a posted quote. A malformed field reads as 0 and a
// row that is not an object reads as an empty row, so one bad row cannot fail
// the whole quote.
type TotalsLineItem struct {
	Name     string        `json:"name"`
	Cost     LenientNumber `json:"cost"`
	Charge   LenientNumber `json:"charge"`
	Quantity LenientNumber `json:"quantity"`
	Days     LenientNumber `json:"days"`
}

func (it *TotalsLineItem) UnmarshalJSON(b []byte) error {
	type plain TotalsLineItem
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*it = TotalsLineItem{}
		return nil
	}
	*it = TotalsLineItem(p)
	return nil
}

func (it TotalsLineItem) ToEntity() entities.LineItem {
	return entities.LineItem{
		Name:     strings.TrimSpace(it.Name),
		Cost:     float64(it.Cost),
		Charge:   float64(it.Charge),
		Quantity: it.Quantity.Count(),
		Days:     it.Days.Count(),
	}
}

type SubsectionInput struct {
	Name  string           `json:"name"`
	Items []TotalsLineItem `json:"items"`
}

type SectionInput struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	Subsections []SubsectionInput `json:"subsections"`
}

// TotalsRequest is a whole quote posted for a stateless totals computation,
// the shape the editor holds in memory. Lists keep display order.
type TotalsRequest struct {
	Currency string         `json:"currency"`
	Sections []SectionInput `json:"sections"`
	Fees     FeesRequest    `json:"fees"`
}

// ToQuote builds the domain document. Sections without an id get a positional
// one; repeated subsection names within a section are merged.
func (r TotalsRequest) ToQuote() entities.Quote {
	q := entities.Quote{
		Currency:     strings.ToUpper(strings.TrimSpace(r.Currency)),
		Sections:     make(map[string]entities.Section, len(r.Sections)),
		SectionOrder: make([]string, 0, len(r.Sections)),
		Fees:         r.Fees.ToEntity(),
	}
	for i, in := range r.Sections {
		id := strings.TrimSpace(in.ID)
		if _, taken := q.Sections[id]; id == "" || taken {
			id = fmt.Sprintf("section-%d", i+1)
		}
		s := entities.Section{
			ID:              id,
			Name:            strings.TrimSpace(in.Name),
			Color:           strings.TrimSpace(in.Color),
			Subsections:     make(map[string][]entities.LineItem, len(in.Subsections)),
			SubsectionOrder: make([]string, 0, len(in.Subsections)),
		}
		for _, sub := range in.Subsections {
			name := strings.TrimSpace(sub.Name)
			if _, exists := s.Subsections[name]; !exists {
				s.SubsectionOrder = append(s.SubsectionOrder, name)
				s.Subsections[name] = make([]entities.LineItem, 0, len(sub.Items))
			}
			for _, it := range sub.Items {
				s.Subsections[name] = append(s.Subsections[name], it.ToEntity())
			}
		}
		q.Sections[id] = s
		q.SectionOrder = append(q.SectionOrder, id)
	}
	return q
}
