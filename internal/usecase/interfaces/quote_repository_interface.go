package interfaces

import (
	"context"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for Quote documents.
//
// Implementations return a zero Quote (empty ID) and a nil error when the quote
// does not exist. Save must fail with ErrVersionConflict when the stored
// version is not q.Version-1, i.e. when someone else wrote in between.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
