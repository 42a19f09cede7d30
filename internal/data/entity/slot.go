package entity

import (
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotStatusDraft     SlotStatus = "DRAFT"
	SlotStatusPublished SlotStatus = "PUBLISHED"
	SlotStatusBooked    SlotStatus = "BOOKED"
)

// Slot is a partner-offered bookable time window. A BOOKED slot is held by
// exactly one non-cancelled booking; DRAFT and PUBLISHED are interchangeable
// only while the slot is not BOOKED.
type Slot struct {
	Base
	PartnerID   uuid.UUID  `db:"partner_id"`
	StartTime   time.Time  `db:"start_time"`
	Status      SlotStatus `db:"status"`
	PublishedAt *time.Time `db:"published_at"`
}
