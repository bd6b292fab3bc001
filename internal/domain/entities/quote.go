package entities

import "time"

// DefaultCurrency is used when a quote is created without a known currency.
const DefaultCurrency = "USD"

// Quote is the document the quote editor mutates.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic concurrency counter, bumped on every write
//
// Totals are never stored: they are always recomputed from Sections + Fees.
type Quote struct {
	ID           string             `json:"id"`
	Currency     string             `json:"currency"`
	Sections     map[string]Section `json:"sections"`
	SectionOrder []string           `json:"section_order"`
	Fees         Fees               `json:"fees"`
	Version      int64              `json:"version"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Fees holds the quote-wide percentages, each in [0,100].
type Fees struct {
	ManagementFee float64 `json:"management_fee"`
	CommissionFee float64 `json:"commission_fee"`
	Discount      float64 `json:"discount"`
}

// Section groups subsections of line items, e.g. "Production Crew".
type Section struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Color           string                `json:"color,omitempty"`
	Subsections     map[string][]LineItem `json:"subsections"`
	SubsectionOrder []string              `json:"subsection_order"`
}

// LineItem is a single priced row: one crew role, one equipment rental.
//
// Extended cost is Cost × Quantity × Days, extended charge is Charge × Quantity × Days.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Cost     float64 `json:"cost"`
	Charge   float64 `json:"charge"`
	Quantity int     `json:"quantity"`
	Days     int     `json:"days"`
}

// OrderedSections returns sections in display order. Sections missing from
// SectionOrder are appended afterwards so none is ever hidden.
func (q Quote) OrderedSections() []Section {
	out := make([]Section, 0, len(q.Sections))
	seen := make(map[string]struct{}, len(q.Sections))
	for _, id := range q.SectionOrder {
		s, ok := q.Sections[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, s)
	}
	for _, id := range sortedKeys(q.Sections) {
		if _, ok := seen[id]; ok {
			continue
		}
		out = append(out, q.Sections[id])
	}
	return out
}

// OrderedSubsections returns subsection names in display order.
func (s Section) OrderedSubsections() []string {
	out := make([]string, 0, len(s.Subsections))
	seen := make(map[string]struct{}, len(s.Subsections))
	for _, name := range s.SubsectionOrder {
		if _, ok := s.Subsections[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, name := range sortedKeys(s.Subsections) {
		if _, ok := seen[name]; ok {
			continue
		}
		out = append(out, name)
	}
	return out
}
