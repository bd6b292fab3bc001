package request

type CheckoutQuoteRequest struct {
	Email string `json:"email"`
}

// CheckoutPlanRequest starts a subscription. Country is optional; when empty
// the handler detects it from the request.
type CheckoutPlanRequest struct {
	Plan     string `json:"plan" binding:"required"`
	Interval string `json:"interval"`
	Country  string `json:"country"`
	Email    string `json:"email"`
}
