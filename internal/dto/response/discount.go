package response

import (
	"partner-booking/internal/data/entity"
)

type DiscountCodeResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	PartnerID      *string `json:"partnerId,omitempty"`
	AmountOffCents *int64  `json:"amountOffCents,omitempty"`
	PercentOff     *int    `json:"percentOff,omitempty"`
	IsActive       bool    `json:"isActive"`
}

func DiscountToResponse(code *entity.DiscountCode) DiscountCodeResponse {
	resp := DiscountCodeResponse{
		ID:             code.ID.String(),
		Code:           code.Code,
		AmountOffCents: code.AmountOffCents,
		PercentOff:     code.PercentOff,
		IsActive:       code.IsActive,
	}
	if code.PartnerID != nil {
		partnerID := code.PartnerID.String()
		resp.PartnerID = &partnerID
	}
	return resp
}
