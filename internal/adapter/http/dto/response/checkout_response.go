package response

import (
	"encoding/json"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/entities"
)

type CheckoutPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	Reference   string    `json:"reference"`
	Kind        string    `json:"kind"`
	Provider    string    `json:"provider"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromCheckoutPayment(p entities.CheckoutPayment) CheckoutPaymentResponse {
	res := CheckoutPaymentResponse{
		PaymentID:          p.ID,
		Reference:          p.Reference,
		Kind:               string(p.Kind),
		Provider:           p.Provider,
		Amount:             p.Amount,
		Currency:           p.Currency,
		CheckoutURL:        p.CheckoutURL,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			res.ProviderPayload = parsed
		}
	}
	return res
}

func FromCheckoutPayments(ps []entities.CheckoutPayment) []CheckoutPaymentResponse {
	out := make([]CheckoutPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromCheckoutPayment(p))
	}
	return out
}
