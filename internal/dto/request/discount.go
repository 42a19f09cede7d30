package request

type CreateDiscountRequest struct {
	Code           string `json:"code" validate:"required,min=3,max=64"`
	PartnerID      *string `json:"partnerId" validate:"omitempty,uuid"` // empty means global
	AmountOffCents *int64 `json:"amountOffCents" validate:"omitempty,min=1"`
	PercentOff     *int   `json:"percentOff" validate:"omitempty,min=1,max=100"`
}

type ValidateDiscountRequest struct {
	Code       string `json:"code" validate:"required"`
	PartnerID  string `json:"partnerId" validate:"required,uuid"`
	TotalCents int64  `json:"totalCents" validate:"required,min=1"`
}
