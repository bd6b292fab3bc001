package usecase

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/metrics"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSubsection receives line items added without a subsection name.
const DefaultSubsection = "General"

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrInvalidFees      = errors.New("fees must be finite percentages between 0 and 100")
	ErrInvalidSection   = errors.New("invalid section")
	ErrSectionNotFound  = errors.New("section not found")
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrQuoteConflict    = errors.New("quote was modified by another request")
)

//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_usecases.go -package=mocks github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase IQuoteUseCase,IPricingUseCase,ICheckoutUseCase

// IQuoteUseCase is the quote editor: sections, line items and fees, plus the
// derived summary.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, currency string) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	SetFees(ctx context.Context, id string, fees entities.Fees) (entities.Quote, error)
	AddSection(ctx context.Context, id, name, color string) (entities.Quote, entities.Section, error)
	RemoveSection(ctx context.Context, id, sectionID string) (entities.Quote, error)
	AddLineItem(ctx context.Context, id, sectionID, subsection string, item entities.LineItem) (entities.Quote, entities.LineItem, error)
	UpdateLineItem(ctx context.Context, id, sectionID, itemID string, item entities.LineItem) (entities.Quote, entities.LineItem, error)
	RemoveLineItem(ctx context.Context, id, sectionID, itemID string) (entities.Quote, error)
	GetSummary(ctx context.Context, id string) (pricing.Summary, error)
}

type QuoteUseCase struct {
	repo  interfaces.IQuoteRepository
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		log:   logging.Named("quote.usecase"),
	}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, currency string) (entities.Quote, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !pricing.KnownCurrency(currency) {
		currency = entities.DefaultCurrency
	}

	now := u.now()
	q := entities.Quote{
		ID:           u.newID(),
		Currency:     currency,
		Sections:     map[string]entities.Section{},
		SectionOrder: []string{},
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("create quote failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	return created, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	return nil
}

func (u *QuoteUseCase) SetFees(ctx context.Context, id string, fees entities.Fees) (entities.Quote, error) {
	if !validPercent(fees.ManagementFee) || !validPercent(fees.CommissionFee) || !validPercent(fees.Discount) {
		return entities.Quote{}, ErrInvalidFees
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		q.Fees = fees
		return nil
	})
}

func (u *QuoteUseCase) AddSection(ctx context.Context, id, name, color string) (entities.Quote, entities.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Quote{}, entities.Section{}, ErrInvalidSection
	}
	s := entities.Section{
		ID:              u.newID(),
		Name:            name,
		Color:           strings.TrimSpace(color),
		Subsections:     map[string][]entities.LineItem{},
		SubsectionOrder: []string{},
	}
	q, err := u.mutate(ctx, id, func(q *entities.Quote) error {
		q.Sections[s.ID] = s
		q.SectionOrder = append(q.SectionOrder, s.ID)
		return nil
	})
	if err != nil {
		return entities.Quote{}, entities.Section{}, err
	}
	return q, s, nil
}

func (u *QuoteUseCase) RemoveSection(ctx context.Context, id, sectionID string) (entities.Quote, error) {
	sectionID = strings.TrimSpace(sectionID)
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if _, ok := q.Sections[sectionID]; !ok {
			return ErrSectionNotFound
		}
		delete(q.Sections, sectionID)
		q.SectionOrder = slices.DeleteFunc(q.SectionOrder, func(s string) bool { return s == sectionID })
		return nil
	})
}

func (u *QuoteUseCase) AddLineItem(ctx context.Context, id, sectionID, subsection string, item entities.LineItem) (entities.Quote, entities.LineItem, error) {
	if err := validateLineItem(item); err != nil {
		return entities.Quote{}, entities.LineItem{}, err
	}
	subsection = strings.TrimSpace(subsection)
	if subsection == "" {
		subsection = DefaultSubsection
	}
	sectionID = strings.TrimSpace(sectionID)
	item.ID = u.newID()
	item.Name = strings.TrimSpace(item.Name)

	q, err := u.mutate(ctx, id, func(q *entities.Quote) error {
		s, ok := q.Sections[sectionID]
		if !ok {
			return ErrSectionNotFound
		}
		if s.Subsections == nil {
			s.Subsections = map[string][]entities.LineItem{}
		}
		if _, exists := s.Subsections[subsection]; !exists {
			s.SubsectionOrder = append(s.SubsectionOrder, subsection)
		}
		s.Subsections[subsection] = append(s.Subsections[subsection], item)
		q.Sections[sectionID] = s
		return nil
	})
	if err != nil {
		return entities.Quote{}, entities.LineItem{}, err
	}
	return q, item, nil
}

// UpdateLineItem replaces an item's values in place, keeping its ID and subsection.
func (u *QuoteUseCase) UpdateLineItem(ctx context.Context, id, sectionID, itemID string, item entities.LineItem) (entities.Quote, entities.LineItem, error) {
	if err := validateLineItem(item); err != nil {
		return entities.Quote{}, entities.LineItem{}, err
	}
	sectionID = strings.TrimSpace(sectionID)
	itemID = strings.TrimSpace(itemID)
	item.ID = itemID
	item.Name = strings.TrimSpace(item.Name)

	q, err := u.mutate(ctx, id, func(q *entities.Quote) error {
		s, ok := q.Sections[sectionID]
		if !ok {
			return ErrSectionNotFound
		}
		for name, items := range s.Subsections {
			if i := indexOfItem(items, itemID); i >= 0 {
				updated := slices.Clone(items)
				updated[i] = item
				s.Subsections[name] = updated
				q.Sections[sectionID] = s
				return nil
			}
		}
		return ErrLineItemNotFound
	})
	if err != nil {
		return entities.Quote{}, entities.LineItem{}, err
	}
	return q, item, nil
}

// RemoveLineItem drops an item; a subsection left empty is dropped with it.
func (u *QuoteUseCase) RemoveLineItem(ctx context.Context, id, sectionID, itemID string) (entities.Quote, error) {
	sectionID = strings.TrimSpace(sectionID)
	itemID = strings.TrimSpace(itemID)
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		s, ok := q.Sections[sectionID]
		if !ok {
			return ErrSectionNotFound
		}
		for name, items := range s.Subsections {
			i := indexOfItem(items, itemID)
			if i < 0 {
				continue
			}
			remaining := slices.Delete(slices.Clone(items), i, i+1)
			if len(remaining) == 0 {
				delete(s.Subsections, name)
				s.SubsectionOrder = slices.DeleteFunc(s.SubsectionOrder, func(n string) bool { return n == name })
			} else {
				s.Subsections[name] = remaining
			}
			q.Sections[sectionID] = s
			return nil
		}
		return ErrLineItemNotFound
	})
}

func (u *QuoteUseCase) GetSummary(ctx context.Context, id string) (pricing.Summary, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return pricing.Summary{}, err
	}
	metrics.QuoteSummaries.WithLabelValues("stored").Inc()
	return pricing.Summarize(q), nil
}

// mutate loads the quote, applies fn and writes it back guarded by Version.
func (u *QuoteUseCase) mutate(ctx context.Context, id string, fn func(q *entities.Quote) error) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Sections == nil {
		q.Sections = map[string]entities.Section{}
	}
	if err := fn(&q); err != nil {
		return entities.Quote{}, err
	}

	q.Version++
	q.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.log.Warn("quote write lost a race", zap.String("quote_id", q.ID), zap.Int64("version", q.Version))
			return entities.Quote{}, ErrQuoteConflict
		}
		u.log.Error("save quote failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	return saved, nil
}

func validPercent(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 100
}

func validateLineItem(it entities.LineItem) error {
	if it.Quantity < 0 || it.Days < 0 {
		return ErrInvalidLineItem
	}
	for _, v := range []float64{it.Cost, it.Charge} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidLineItem
		}
	}
	return nil
}

func indexOfItem(items []entities.LineItem, itemID string) int {
	return slices.IndexFunc(items, func(it entities.LineItem) bool { return it.ID == itemID })
}
