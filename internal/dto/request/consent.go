package request

type CreateConsentRequest struct {
	Email   *string `json:"email" validate:"omitempty,email"`
	Kind    string  `json:"kind" validate:"required,oneof=cookies marketing"`
	Granted *bool   `json:"granted" validate:"required"`
	Locale  string  `json:"locale" validate:"omitempty,max=8"`
}
