package request

type CreateBookingRequest struct {
	PartnerID     string `json:"partnerId" validate:"required,uuid"`
	SlotID        string `json:"slotId" validate:"required,uuid"`
	StartTimeISO  string `json:"startTimeISO" validate:"required"`
	PlayersCount  int    `json:"playersCount" validate:"required,min=1,max=3"`
	CustomerName  string `json:"customerName" validate:"required,min=2,max=120"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"omitempty,max=32"`
	DiscountCode  string `json:"discountCode" validate:"omitempty,max=64"`
}

type PricingQuoteRequest struct {
	PartnerID    string `json:"partnerId" validate:"required,uuid"`
	StartTimeISO string `json:"startTimeISO" validate:"required"`
	PlayersCount int    `json:"playersCount" validate:"required,min=1,max=3"`
}
