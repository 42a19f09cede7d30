package request

type CreateSlotRequest struct {
	PartnerID    string `json:"partnerId" validate:"omitempty,uuid"` // admin only; partners use their own scope
	StartTimeISO string `json:"startTimeISO" validate:"required"`
}

type BatchSlotStatusRequest struct {
	SlotIDs []string `json:"slotIds" validate:"required,min=1,dive,uuid"`
	Status  string   `json:"status" validate:"required,oneof=PUBLISHED DRAFT"`
}
