package response

type Pricing struct {
	TotalCents   int64 `json:"totalCents"`
	DepositCents int64 `json:"depositCents"`
	RestCents    int64 `json:"restCents"`
}

// PricingQuoteResponse is the fixed wire contract of the pricing query.
type PricingQuoteResponse struct {
	Pricing Pricing `json:"pricing"`
}

type DiscountValidationResponse struct {
	Valid               bool   `json:"valid"`
	Code                string `json:"code"`
	DiscountAmountCents int64  `json:"discountAmountCents"`
}
