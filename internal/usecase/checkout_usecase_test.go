package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"
	mock_interfaces "github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// chargeableQuote totals 1600 charge, 1760 with a 10% management fee.
func chargeableQuote() entities.Quote {
	q := storedQuote()
	q.Fees = entities.Fees{ManagementFee: 10}
	return q
}

func TestCheckoutUseCase_CheckoutQuote_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, false)
		_, err := uc.CheckoutQuote(context.Background(), " ", "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(repo, quoteRepo, nil, false)

		_, err := uc.CheckoutQuote(context.Background(), "q-1", "")
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("quote repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, nil, gateway, false)

		_, err := uc.CheckoutQuote(context.Background(), "q-1", "")
		if err == nil || err.Error() != "quote repository not configured" {
			t.Fatalf("expected quote repository not configured error, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, quoteRepo, gateway, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CheckoutQuote(context.Background(), "q-1", "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("nothing to charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, quoteRepo, gateway, false)

		q := storedQuote()
		q.Fees = entities.Fees{Discount: 100}
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.CheckoutQuote(context.Background(), "q-1", "")
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CheckoutQuote_Gateway(t *testing.T) {
	t.Run("success records pending session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, quoteRepo, gateway, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(chargeableQuote(), nil)
		gateway.EXPECT().Name().Return("stripe").AnyTimes()
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
				if req.Reference != "q-1" || req.Currency != "USD" || req.Amount.String() != "1760" {
					t.Fatalf("unexpected request: %+v", req)
				}
				if req.Interval != "" || req.PayerEmail != "a@b.com" || req.Metadata["quote_version"] != "3" {
					t.Fatalf("unexpected request: %+v", req)
				}
				return interfaces.CheckoutResult{
					ProviderPaymentID: "cs_123",
					ProviderStatus:    "open",
					CheckoutURL:       "https://checkout.example/cs_123",
					ProviderResponse:  json.RawMessage(`{"id":"cs_123"}`),
				}, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) { return p, nil },
		)

		p, err := uc.CheckoutQuote(context.Background(), "q-1", " a@b.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "cs_123" || p.Status != entities.PaymentStatusPending || p.Amount != "1760.00" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.Provider != "stripe" || p.Kind != entities.CheckoutKindQuote || p.CheckoutURL == "" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			msg  string
			want error
		}{
			{`{"status":400,"message":"bad"}`, ErrPaymentGatewayBadRequest},
			{`{"status":401,"type":"invalid_request_error"}`, ErrPaymentGatewayUnauthorized},
			{`{"cause":[{"code":2034}]}`, ErrPaymentGatewayInvalidUsers},
			{`customer not found`, ErrPaymentGatewayCustomerNotFound},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
			quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewCheckoutUseCase(repo, quoteRepo, gateway, false)

			quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(chargeableQuote(), nil)
			gateway.EXPECT().Name().Return("mercadopago").AnyTimes()
			gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutResult{}, errors.New(tc.msg))

			_, err := uc.CheckoutQuote(context.Background(), "q-1", "")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v for %q, got %v", tc.want, tc.msg, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("unclassified error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, quoteRepo, gateway, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(chargeableQuote(), nil)
		gateway.EXPECT().Name().Return("stripe").AnyTimes()
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutResult{}, errors.New("timeout"))

		_, err := uc.CheckoutQuote(context.Background(), "q-1", "")
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("mock mode skips gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(repo, quoteRepo, nil, true)
		uc.now = func() time.Time { return fixedNow }

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(chargeableQuote(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) { return p, nil },
		)

		p, err := uc.CheckoutQuote(context.Background(), "q-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusApproved || p.Provider != "mock" || p.ID == "" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		var body map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &body); err != nil || body["reference"] != "q-1" {
			t.Fatalf("unexpected mock payload: %s", p.ProviderPayloadRaw)
		}
	})
}

func TestCheckoutUseCase_CheckoutPlan(t *testing.T) {
	t.Run("invalid plan", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, true)
		if _, err := uc.CheckoutPlan(context.Background(), "US", "enterprise", "month", ""); !errors.Is(err, ErrInvalidPlan) {
			t.Fatalf("expected ErrInvalidPlan, got %v", err)
		}
	})

	t.Run("invalid interval", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, true)
		if _, err := uc.CheckoutPlan(context.Background(), "US", "team", "weekly", ""); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("annual team plan in local currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, nil, gateway, false)

		gateway.EXPECT().Name().Return("stripe").AnyTimes()
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
				if req.Currency != "MYR" || req.Amount.String() != "1290" || req.Interval != IntervalYear {
					t.Fatalf("unexpected request: %+v", req)
				}
				if req.Reference != "plan:tier3:team:year" {
					t.Fatalf("unexpected reference: %s", req.Reference)
				}
				return interfaces.CheckoutResult{ProviderPaymentID: "cs_9", ProviderStatus: "complete"}, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) { return p, nil },
		)

		p, err := uc.CheckoutPlan(context.Background(), "my", "Team", "annual", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Kind != entities.CheckoutKindPlan || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestCheckoutUseCase_ListPaymentsByReference(t *testing.T) {
	t.Run("invalid reference", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, false)
		if _, err := uc.ListPaymentsByReference(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentReference) {
			t.Fatalf("expected ErrInvalidPaymentReference, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		uc := NewCheckoutUseCase(repo, nil, nil, false)

		repo.EXPECT().ListByReference(gomock.Any(), "q-1").Return([]entities.CheckoutPayment{{ID: "p1"}, {ID: "p2"}}, nil)

		got, err := uc.ListPaymentsByReference(context.Background(), " q-1 ")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func TestStatusFromProvider(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":   entities.PaymentStatusApproved,
		"complete":   entities.PaymentStatusApproved,
		"rejected":   entities.PaymentStatusDenied,
		"expired":    entities.PaymentStatusDenied,
		"open":       entities.PaymentStatusPending,
		"in_process": entities.PaymentStatusPending,
	}
	for in, want := range cases {
		if got := statusFromProvider(in); got != want {
			t.Fatalf("statusFromProvider(%q) = %s, want %s", in, got, want)
		}
	}
}
