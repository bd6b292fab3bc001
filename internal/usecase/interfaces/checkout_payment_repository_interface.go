package interfaces

import (
	"context"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
)

//go:generate mockgen -source=checkout_payment_repository_interface.go -destination=mocks/mock_checkout_payment_repository_interface.go -package=mock_interfaces

// ICheckoutPaymentRepository abstracts DynamoDB persistence for CheckoutPayment.
type ICheckoutPaymentRepository interface {
	Create(ctx context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error)
	ListByReference(ctx context.Context, reference string) ([]entities.CheckoutPayment, error)
}
