package response

import (
	"time"

	"partner-booking/internal/data/entity"
)

type ConsentResponse struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Kind      string    `json:"kind"`
	Granted   bool      `json:"granted"`
	Locale    string    `json:"locale,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ConsentToResponse(record *entity.ConsentRecord) ConsentResponse {
	return ConsentResponse{
		ID:        record.ID.String(),
		Email:     record.Email,
		Kind:      record.Kind,
		Granted:   record.Granted,
		Locale:    record.Locale,
		CreatedAt: record.CreatedAt,
	}
}
