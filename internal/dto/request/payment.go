package request

// PaymentWebhookRequest is what the payment provider posts on every
// status change of a deposit attempt.
type PaymentWebhookRequest struct {
	ProviderPaymentID string `json:"providerPaymentId" validate:"required"`
	Status            string `json:"status" validate:"required,oneof=PENDING PAID FAILED CANCELED REFUNDED"`
	Method            string `json:"method" validate:"omitempty,max=32"`
	PaidAtISO         string `json:"paidAtISO" validate:"omitempty"`
}
