package repository

import (
	"context"
	"testing"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() entities.Quote {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return entities.Quote{
		ID:       "q-1",
		Currency: "MYR",
		Sections: map[string]entities.Section{
			"s-1": {
				ID:    "s-1",
				Name:  "Production Crew",
				Color: "#3366ff",
				Subsections: map[string][]entities.LineItem{
					"Camera":   {{ID: "li-1", Name: "DP", Cost: 0.1, Charge: 0.3, Quantity: 2, Days: 3}},
					"Lighting": {{ID: "li-2", Cost: 300, Charge: 450, Quantity: 1, Days: 2}},
				},
				SubsectionOrder: []string{"Camera", "Lighting"},
			},
		},
		SectionOrder: []string{"s-1"},
		Fees:         entities.Fees{ManagementFee: 12.5, CommissionFee: 5, Discount: 0},
		Version:      2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestQuoteDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb, "")
	ctx := context.Background()

	q := sampleQuote()
	_, err := repo.Create(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "quotes", *ddb.lastPut.TableName)
	assert.Equal(t, "attribute_not_exists(#id)", *ddb.lastPut.ConditionExpression)

	got, err := repo.GetByID(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestQuoteDynamoRepository_GetMissing(t *testing.T) {
	repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes-test")

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestQuoteDynamoRepository_Save(t *testing.T) {
	t.Run("conditions on previous version", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewQuoteDynamoRepository(ddb, "")
		q := sampleQuote()
		q.Version = 5

		_, err := repo.Save(context.Background(), q)
		require.NoError(t, err)

		prev, ok := ddb.lastPut.ExpressionAttributeValues[":prev"].(*types.AttributeValueMemberN)
		require.True(t, ok)
		assert.Equal(t, "4", prev.Value)
	})

	t.Run("conditional failure is a version conflict", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.err = &types.ConditionalCheckFailedException{}
		repo := NewQuoteDynamoRepository(ddb, "")

		_, err := repo.Save(context.Background(), sampleQuote())
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})
}

func TestQuoteDynamoRepository_Delete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewQuoteDynamoRepository(ddb, "")
		_, err := repo.Create(context.Background(), sampleQuote())
		require.NoError(t, err)

		deleted, err := repo.Delete(context.Background(), "q-1")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Empty(t, ddb.items)
	})

	t.Run("missing", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.err = &types.ConditionalCheckFailedException{}
		repo := NewQuoteDynamoRepository(ddb, "")

		deleted, err := repo.Delete(context.Background(), "q-1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
