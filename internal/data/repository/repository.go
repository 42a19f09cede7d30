package repository

import (
	"partner-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Partner  PartnerRepository
	Slot     SlotRepository
	Booking  BookingRepository
	Payment  PaymentRepository
	Discount DiscountRepository
	Consent  ConsentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Partner:  NewPartnerRepository(db, log),
		Slot:     NewSlotRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Discount: NewDiscountRepository(db, log),
		Consent:  NewConsentRepository(db, log),
	}
}
