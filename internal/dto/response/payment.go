package response

import (
	"time"

	"partner-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID                string     `json:"id"`
	BookingID         string     `json:"bookingId"`
	ProviderPaymentID string     `json:"providerPaymentId"`
	Status            string     `json:"status"`
	AmountCents       int64      `json:"amountCents"`
	Currency          string     `json:"currency"`
	Method            *string    `json:"method,omitempty"`
	PaidAt            *time.Time `json:"paidAt,omitempty"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                payment.ID.String(),
		BookingID:         payment.BookingID.String(),
		ProviderPaymentID: payment.ProviderPaymentID,
		Status:            string(payment.Status),
		AmountCents:       payment.AmountCents,
		Currency:          payment.Currency,
		Method:            payment.Method,
		PaidAt:            payment.PaidAt,
	}
}

// PaymentStatusResponse is what the public status-polling client consumes
// to decide when to stop polling and redirect.
type PaymentStatusResponse struct {
	BookingStatus string           `json:"bookingStatus"`
	Confirmed     bool             `json:"confirmed"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
}
