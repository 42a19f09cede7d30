package response

import (
	"time"

	"partner-booking/internal/data/entity"
)

type SlotResponse struct {
	ID          string     `json:"id"`
	PartnerID   string     `json:"partnerId"`
	StartTime   time.Time  `json:"startTime"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func SlotToResponse(slot *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:          slot.ID.String(),
		PartnerID:   slot.PartnerID.String(),
		StartTime:   slot.StartTime,
		Status:      string(slot.Status),
		PublishedAt: slot.PublishedAt,
	}
}

func SlotsToResponse(slots []*entity.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = SlotToResponse(slot)
	}
	return out
}

// BatchSlotStatusResponse is the fixed wire contract of the batch
// publish/unpublish endpoint.
type BatchSlotStatusResponse struct {
	Ok      bool  `json:"ok"`
	Updated int64 `json:"updated"`
}

type SlotStatusCounts struct {
	Draft     int64 `json:"draft"`
	Published int64 `json:"published"`
	Booked    int64 `json:"booked"`
}
