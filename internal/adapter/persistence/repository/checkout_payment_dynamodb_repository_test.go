package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentAV(t *testing.T, id string, at time.Time) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toCheckoutPaymentItem(entities.CheckoutPayment{
		ID:        id,
		Reference: "q-1",
		Kind:      entities.CheckoutKindQuote,
		Provider:  "stripe",
		Amount:    "1760.00",
		Currency:  "USD",
		Date:      at,
		Status:    entities.PaymentStatusPending,
	}))
	require.NoError(t, err)
	return av
}

func TestCheckoutPaymentDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCheckoutPaymentDynamoRepository(ddb, "payments-test")
	ctx := context.Background()

	p := entities.CheckoutPayment{
		ID:                 "cs_1",
		Reference:          "q-1",
		Kind:               entities.CheckoutKindQuote,
		Provider:           "stripe",
		Amount:             "1760.00",
		Currency:           "USD",
		CheckoutURL:        "https://checkout.example/cs_1",
		Date:               time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:             entities.PaymentStatusPending,
		ProviderPayloadRaw: json.RawMessage(`{"id":"cs_1"}`),
	}
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "payments-test", *ddb.lastPut.TableName)

	got, err := repo.GetByID(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, p.Amount, got.Amount)
	assert.Equal(t, p.Date, got.Date)
	assert.JSONEq(t, `{"id":"cs_1"}`, string(got.ProviderPayloadRaw))

	missing, err := repo.GetByID(ctx, "cs_2")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCheckoutPaymentDynamoRepository_ListByReference(t *testing.T) {
	ddb := newFakeDynamo()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ddb.queryPages = [][]map[string]types.AttributeValue{
		{paymentAV(t, "cs_3", base.Add(2*time.Hour)), paymentAV(t, "cs_1", base)},
		{paymentAV(t, "cs_2", base.Add(time.Hour))},
	}
	repo := NewCheckoutPaymentDynamoRepository(ddb, "")

	got, err := repo.ListByReference(context.Background(), "q-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"cs_1", "cs_2", "cs_3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, paymentsReferenceIndex, *ddb.lastQuery.IndexName)
}
