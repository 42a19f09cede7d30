package response

import (
	"partner-booking/internal/data/entity"
)

type PartnerResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Price1PaxCents  int64  `json:"price1PaxCents"`
	Price2PlusCents int64  `json:"price2PlusCents"`
	FeePercent      int    `json:"feePercent"`
	IsActive        bool   `json:"isActive"`
}

func PartnerToResponse(partner *entity.Partner) PartnerResponse {
	return PartnerResponse{
		ID:              partner.ID.String(),
		Name:            partner.Name,
		Slug:            partner.Slug,
		Price1PaxCents:  partner.Price1PaxCents,
		Price2PlusCents: partner.Price2PlusCents,
		FeePercent:      partner.FeePercent,
		IsActive:        partner.IsActive,
	}
}
