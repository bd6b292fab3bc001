package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID           string                 `dynamodbav:"id"`
	Currency     string                 `dynamodbav:"currency"`
	Sections     map[string]sectionItem `dynamodbav:"sections"`
	SectionOrder []string               `dynamodbav:"section_order"`
	Fees         feesItem               `dynamodbav:"fees"`
	Version      int64                  `dynamodbav:"version"`
	CreatedAt    string                 `dynamodbav:"created_at"`
	UpdatedAt    string                 `dynamodbav:"updated_at"`
}

type feesItem struct {
	ManagementFee string `dynamodbav:"management_fee"`
	CommissionFee string `dynamodbav:"commission_fee"`
	Discount      string `dynamodbav:"discount"`
}

type sectionItem struct {
	ID              string                    `dynamodbav:"id"`
	Name            string                    `dynamodbav:"name"`
	Color           string                    `dynamodbav:"color,omitempty"`
	Subsections     map[string][]lineItemItem `dynamodbav:"subsections"`
	SubsectionOrder []string                  `dynamodbav:"subsection_order"`
}

type lineItemItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name,omitempty"`
	Cost     string `dynamodbav:"cost"`
	Charge   string `dynamodbav:"charge"`
	Quantity int    `dynamodbav:"quantity"`
	Days     int    `dynamodbav:"days"`
}

// QuoteDynamoRepository persists Quote documents in DynamoDB, one item per quote.
//
// Table requirements:
//   - PK: id (string)
//
// Money values are stored as decimal strings so they round-trip exactly.
type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: valueOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// Save overwrites the quote only if the stored version is q.Version-1.
func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :prev"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(q.Version-1, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	sections := make(map[string]sectionItem, len(q.Sections))
	for id, s := range q.Sections {
		subs := make(map[string][]lineItemItem, len(s.Subsections))
		for name, items := range s.Subsections {
			out := make([]lineItemItem, 0, len(items))
			for _, li := range items {
				out = append(out, lineItemItem{
					ID:       li.ID,
					Name:     li.Name,
					Cost:     floatToString(li.Cost),
					Charge:   floatToString(li.Charge),
					Quantity: li.Quantity,
					Days:     li.Days,
				})
			}
			subs[name] = out
		}
		sections[id] = sectionItem{
			ID:              s.ID,
			Name:            s.Name,
			Color:           s.Color,
			Subsections:     subs,
			SubsectionOrder: s.SubsectionOrder,
		}
	}
	return quoteItem{
		ID:           q.ID,
		Currency:     q.Currency,
		Sections:     sections,
		SectionOrder: q.SectionOrder,
		Fees: feesItem{
			ManagementFee: floatToString(q.Fees.ManagementFee),
			CommissionFee: floatToString(q.Fees.CommissionFee),
			Discount:      floatToString(q.Fees.Discount),
		},
		Version:   q.Version,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	sections := make(map[string]entities.Section, len(it.Sections))
	for id, s := range it.Sections {
		subs := make(map[string][]entities.LineItem, len(s.Subsections))
		for name, items := range s.Subsections {
			out := make([]entities.LineItem, 0, len(items))
			for _, li := range items {
				out = append(out, entities.LineItem{
					ID:       li.ID,
					Name:     li.Name,
					Cost:     stringToFloat(li.Cost),
					Charge:   stringToFloat(li.Charge),
					Quantity: li.Quantity,
					Days:     li.Days,
				})
			}
			subs[name] = out
		}
		sections[id] = entities.Section{
			ID:              s.ID,
			Name:            s.Name,
			Color:           s.Color,
			Subsections:     subs,
			SubsectionOrder: s.SubsectionOrder,
		}
	}
	return entities.Quote{
		ID:           it.ID,
		Currency:     it.Currency,
		Sections:     sections,
		SectionOrder: it.SectionOrder,
		Fees: entities.Fees{
			ManagementFee: stringToFloat(it.Fees.ManagementFee),
			CommissionFee: stringToFloat(it.Fees.CommissionFee),
			Discount:      stringToFloat(it.Fees.Discount),
		},
		Version:   it.Version,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
