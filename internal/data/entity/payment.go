package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "DEPOSIT"
)

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "CREATED"
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Payment is one provider attempt for a booking. Retries create new rows;
// the booking counts as paid when any DEPOSIT row is PAID.
type Payment struct {
	Base
	BookingID         uuid.UUID     `db:"booking_id"`
	Type              PaymentType   `db:"type"`
	ProviderPaymentID string        `db:"provider_payment_id"`
	Status            PaymentStatus `db:"status"`
	AmountCents       int64         `db:"amount_cents"`
	Currency          string        `db:"currency"`
	Method            *string       `db:"method"`
	PaidAt            *time.Time    `db:"paid_at"`
}
