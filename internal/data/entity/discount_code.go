package entity

import (
	"github.com/google/uuid"
)

// DiscountCode is partner-scoped when PartnerID is set, global otherwise.
// Exactly one of AmountOffCents / PercentOff is used.
type DiscountCode struct {
	Base
	Code           string     `db:"code"`
	PartnerID      *uuid.UUID `db:"partner_id"`
	AmountOffCents *int64     `db:"amount_off_cents"`
	PercentOff     *int       `db:"percent_off"`
	IsActive       bool       `db:"is_active"`
}
