package response

import (
	"time"

	"partner-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                  string    `json:"id"`
	OrderID             string    `json:"orderId"`
	SlotID              string    `json:"slotId"`
	PartnerID           string    `json:"partnerId"`
	StartTime           time.Time `json:"startTime"`
	PlayersCount        int       `json:"playersCount"`
	TotalAmountCents    int64     `json:"totalAmountCents"`
	DepositAmountCents  int64     `json:"depositAmountCents"`
	RestAmountCents     int64     `json:"restAmountCents"`
	DiscountAmountCents int64     `json:"discountAmountCents"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking, startTime time.Time) BookingResponse {
	return BookingResponse{
		ID:                  booking.ID.String(),
		OrderID:             booking.OrderID,
		SlotID:              booking.SlotID.String(),
		PartnerID:           booking.PartnerID.String(),
		StartTime:           startTime,
		PlayersCount:        booking.PlayersCount,
		TotalAmountCents:    booking.TotalAmountCents,
		DepositAmountCents:  booking.DepositAmountCents,
		RestAmountCents:     booking.RestAmountCents,
		DiscountAmountCents: booking.DiscountAmountCents,
		Status:              string(booking.Status),
		CreatedAt:           booking.CreatedAt,
	}
}

// ReconcileResponse is the fixed wire contract of the reconciliation
// trigger endpoint.
type ReconcileResponse struct {
	Ok        bool `json:"ok"`
	Processed int  `json:"processed"`
}
