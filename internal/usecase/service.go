package usecase

import (
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Partner   PartnerService
	Slot      SlotService
	Booking   BookingService
	Payment   PaymentService
	Discount  DiscountService
	Consent   ConsentService
	Reconcile ReconcileService
}

func NewService(repo *repository.Repository, rdb *redis.Client, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Partner:   NewPartnerService(repo, log),
		Slot:      NewSlotService(repo, rdb, log),
		Booking:   NewBookingService(repo, rdb, config, log),
		Payment:   NewPaymentService(repo, log),
		Discount:  NewDiscountService(repo, log),
		Consent:   NewConsentService(repo, log),
		Reconcile: NewReconcileService(repo, rdb, config, log),
	}
}
