package repository

import (
	"context"
	"sort"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsReferenceIndex   = "reference-index"
)

type checkoutPaymentItem struct {
	ID                 string `dynamodbav:"id"`
	Reference          string `dynamodbav:"reference"`
	Kind               string `dynamodbav:"kind"`
	Provider           string `dynamodbav:"provider"`
	Amount             string `dynamodbav:"amount"`
	Currency           string `dynamodbav:"currency"`
	CheckoutURL        string `dynamodbav:"checkout_url,omitempty"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// CheckoutPaymentDynamoRepository persists CheckoutPayment records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference-index (PK: reference)
type CheckoutPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICheckoutPaymentRepository = (*CheckoutPaymentDynamoRepository)(nil)

func NewCheckoutPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *CheckoutPaymentDynamoRepository {
	return &CheckoutPaymentDynamoRepository{
		ddb:       ddb,
		tableName: valueOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *CheckoutPaymentDynamoRepository) Create(ctx context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) {
	av, err := attributevalue.MarshalMap(toCheckoutPaymentItem(p))
	if err != nil {
		return entities.CheckoutPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CheckoutPayment{}, err
	}
	return p, nil
}

func (r *CheckoutPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutPayment{}, nil
	}

	var it checkoutPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutPayment{}, err
	}
	return fromCheckoutPaymentItem(it), nil
}

// ListByReference returns every payment opened for a reference, oldest first.
func (r *CheckoutPaymentDynamoRepository) ListByReference(ctx context.Context, reference string) ([]entities.CheckoutPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsReferenceIndex),
		KeyConditionExpression: aws.String("#reference = :ref"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
	})

	items := make([]entities.CheckoutPayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it checkoutPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCheckoutPaymentItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toCheckoutPaymentItem(p entities.CheckoutPayment) checkoutPaymentItem {
	return checkoutPaymentItem{
		ID:                 p.ID,
		Reference:          p.Reference,
		Kind:               string(p.Kind),
		Provider:           p.Provider,
		Amount:             p.Amount,
		Currency:           p.Currency,
		CheckoutURL:        p.CheckoutURL,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromCheckoutPaymentItem(it checkoutPaymentItem) entities.CheckoutPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.CheckoutPayment{
		ID:          it.ID,
		Reference:   it.Reference,
		Kind:        entities.CheckoutKind(it.Kind),
		Provider:    it.Provider,
		Amount:      it.Amount,
		Currency:    it.Currency,
		CheckoutURL: it.CheckoutURL,
		Date:        dt,
		Status:      entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
