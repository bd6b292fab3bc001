package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"
	mock_interfaces "github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	uc := NewQuoteUseCase(repo)
	n := 0
	uc.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// storedQuote returns a fresh quote with one section holding one item.
func storedQuote() entities.Quote {
	return entities.Quote{
		ID:       "q-1",
		Currency: "USD",
		Sections: map[string]entities.Section{
			"s-1": {
				ID:   "s-1",
				Name: "Production Crew",
				Subsections: map[string][]entities.LineItem{
					"Camera": {{ID: "li-1", Name: "DP", Cost: 500, Charge: 800, Quantity: 1, Days: 2}},
				},
				SubsectionOrder: []string{"Camera"},
			},
		},
		SectionOrder: []string{"s-1"},
		Version:      3,
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("unknown currency falls back to USD", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Currency != "USD" || q.Version != 1 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Sections == nil || !q.CreatedAt.Equal(fixedNow) {
					t.Fatalf("expected initialized quote, got %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.CreateQuote(context.Background(), "XXX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("known currency is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, err := uc.CreateQuote(context.Background(), " myr ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Currency != "MYR" {
			t.Fatalf("expected MYR, got %s", q.Currency)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.CreateQuote(context.Background(), "USD")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetAndDelete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if _, err := uc.GetQuote(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if err := uc.DeleteQuote(context.Background(), ""); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		if _, err := uc.GetQuote(context.Background(), " q-1 "); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(false, nil)

		if err := uc.DeleteQuote(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)

		if err := uc.DeleteQuote(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_SetFees(t *testing.T) {
	invalid := []entities.Fees{
		{ManagementFee: -1},
		{CommissionFee: 100.5},
		{Discount: math.NaN()},
		{ManagementFee: math.Inf(1)},
	}
	for _, fees := range invalid {
		uc := NewQuoteUseCase(nil)
		if _, err := uc.SetFees(context.Background(), "q-1", fees); !errors.Is(err, ErrInvalidFees) {
			t.Fatalf("expected ErrInvalidFees for %+v, got %v", fees, err)
		}
	}

	t.Run("bumps version and stores fees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)
		fees := entities.Fees{ManagementFee: 10, CommissionFee: 5, Discount: 20}

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Version != 4 || q.Fees != fees || !q.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected saved quote: %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.SetFees(context.Background(), "q-1", fees); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrVersionConflict)

		_, err := uc.SetFees(context.Background(), "q-1", entities.Fees{})
		if !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_Sections(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		if _, _, err := uc.AddSection(context.Background(), "q-1", " ", ""); !errors.Is(err, ErrInvalidSection) {
			t.Fatalf("expected ErrInvalidSection, got %v", err)
		}
	})

	t.Run("add appends to order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, s, err := uc.AddSection(context.Background(), "q-1", "Equipment", "#ff0000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.Name != "Equipment" || s.Color != "#ff0000" {
			t.Fatalf("unexpected section: %+v", s)
		}
		if len(q.SectionOrder) != 2 || q.SectionOrder[1] != s.ID {
			t.Fatalf("expected section appended, got %v", q.SectionOrder)
		}
		if _, ok := q.Sections[s.ID]; !ok {
			t.Fatalf("expected section stored")
		}
	})

	t.Run("remove unknown section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		if _, err := uc.RemoveSection(context.Background(), "q-1", "nope"); !errors.Is(err, ErrSectionNotFound) {
			t.Fatalf("expected ErrSectionNotFound, got %v", err)
		}
	})

	t.Run("remove section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, err := uc.RemoveSection(context.Background(), "q-1", "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Sections) != 0 || len(q.SectionOrder) != 0 {
			t.Fatalf("expected no sections, got %+v", q)
		}
	})
}

func TestQuoteUseCase_LineItems(t *testing.T) {
	t.Run("invalid item", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		bad := []entities.LineItem{
			{Quantity: -1, Days: 1},
			{Quantity: 1, Days: -2},
			{Quantity: 1, Days: 1, Cost: math.NaN()},
			{Quantity: 1, Days: 1, Charge: math.Inf(-1)},
		}
		for _, it := range bad {
			if _, _, err := uc.AddLineItem(context.Background(), "q-1", "s-1", "Camera", it); !errors.Is(err, ErrInvalidLineItem) {
				t.Fatalf("expected ErrInvalidLineItem for %+v, got %v", it, err)
			}
		}
	})

	t.Run("add to new default subsection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, it, err := uc.AddLineItem(context.Background(), "q-1", "s-1", "", entities.LineItem{Name: " Gaffer ", Cost: 300, Charge: 450, Quantity: 1, Days: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.ID == "" || it.Name != "Gaffer" {
			t.Fatalf("unexpected item: %+v", it)
		}
		s := q.Sections["s-1"]
		if got := s.SubsectionOrder; len(got) != 2 || got[1] != DefaultSubsection {
			t.Fatalf("expected default subsection appended, got %v", got)
		}
		if len(s.Subsections[DefaultSubsection]) != 1 {
			t.Fatalf("expected item stored in default subsection")
		}
	})

	t.Run("add to unknown section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		_, _, err := uc.AddLineItem(context.Background(), "q-1", "s-9", "Camera", entities.LineItem{Quantity: 1, Days: 1})
		if !errors.Is(err, ErrSectionNotFound) {
			t.Fatalf("expected ErrSectionNotFound, got %v", err)
		}
	})

	t.Run("update in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, it, err := uc.UpdateLineItem(context.Background(), "q-1", "s-1", "li-1", entities.LineItem{Name: "DP", Cost: 600, Charge: 900, Quantity: 1, Days: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.ID != "li-1" {
			t.Fatalf("expected id kept, got %s", it.ID)
		}
		got := q.Sections["s-1"].Subsections["Camera"][0]
		if got.Charge != 900 || got.Days != 3 {
			t.Fatalf("expected updated item, got %+v", got)
		}
	})

	t.Run("update unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		_, _, err := uc.UpdateLineItem(context.Background(), "q-1", "s-1", "li-9", entities.LineItem{Quantity: 1, Days: 1})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("remove last item drops subsection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, err := uc.RemoveLineItem(context.Background(), "q-1", "s-1", "li-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := q.Sections["s-1"]
		if len(s.Subsections) != 0 || len(s.SubsectionOrder) != 0 {
			t.Fatalf("expected empty section, got %+v", s)
		}
	})
}

func TestQuoteUseCase_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newTestQuoteUseCase(repo)

	q := storedQuote()
	q.Fees = entities.Fees{ManagementFee: 10}
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

	s, err := uc.GetSummary(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Totals.TotalCost.String() != "1000" || s.Totals.TotalCharge.String() != "1600" {
		t.Fatalf("unexpected totals: %+v", s.Totals)
	}
	if s.Totals.GrandTotal.String() != "1760" {
		t.Fatalf("expected grand total 1760, got %s", s.Totals.GrandTotal)
	}
	if len(s.Sections) != 1 || s.Sections[0].Profit.String() != "600" {
		t.Fatalf("unexpected breakdown: %+v", s.Sections)
	}
}
