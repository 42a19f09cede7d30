package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking holds its slot in BOOKED state until it reaches CONFIRMED or
// CANCELLED. Amounts satisfy deposit + rest == total - discount.
type Booking struct {
	Base
	OrderID             string        `db:"order_id"`
	SlotID              uuid.UUID     `db:"slot_id"`
	PartnerID           uuid.UUID     `db:"partner_id"`
	CustomerName        string        `db:"customer_name"`
	CustomerEmail       string        `db:"customer_email"`
	CustomerPhone       string        `db:"customer_phone"`
	PlayersCount        int           `db:"players_count"`
	TotalAmountCents    int64         `db:"total_amount_cents"`
	DepositAmountCents  int64         `db:"deposit_amount_cents"`
	RestAmountCents     int64         `db:"rest_amount_cents"`
	DiscountCodeID      *uuid.UUID    `db:"discount_code_id"`
	DiscountAmountCents int64         `db:"discount_amount_cents"`
	Status              BookingStatus `db:"status"`
	ConfirmedAt         *time.Time    `db:"confirmed_at"`
	DepositPaidAt       *time.Time    `db:"deposit_paid_at"`
}
