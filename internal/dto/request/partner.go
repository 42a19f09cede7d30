package request

type CreatePartnerRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=120"`
	Slug            string `json:"slug" validate:"required,min=2,max=64"`
	Price1PaxCents  int64  `json:"price1PaxCents" validate:"min=0"`
	Price2PlusCents int64  `json:"price2PlusCents" validate:"min=0"`
	FeePercent      int    `json:"feePercent" validate:"min=0,max=100"`
}

type UpdatePartnerRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=120"`
	Slug            string `json:"slug" validate:"required,min=2,max=64"`
	Price1PaxCents  int64  `json:"price1PaxCents" validate:"min=0"`
	Price2PlusCents int64  `json:"price2PlusCents" validate:"min=0"`
	FeePercent      int    `json:"feePercent" validate:"min=0,max=100"`
	IsActive        bool   `json:"isActive"`
}
