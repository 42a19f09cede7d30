package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/pkg/cache"
	"partner-booking/pkg/metrics"
	"partner-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type BookingService interface {
	// Quote prices a party without touching any state.
	Quote(ctx context.Context, req *request.PricingQuoteRequest) (*response.PricingQuoteResponse, error)

	// CreateBooking atomically takes the slot and records the PENDING
	// booking. Losing a race for the slot returns ErrSlotUnavailable.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// InitiatePayment opens a deposit attempt with the payment provider.
	// Retries after a failed attempt create a fresh attempt.
	InitiatePayment(ctx context.Context, bookingID string) (*response.PaymentResponse, error)

	// GetPaymentStatus is the public polling projection: booking status
	// plus the latest deposit attempt.
	GetPaymentStatus(ctx context.Context, bookingID string) (*response.PaymentStatusResponse, error)

	GetPartnerBookings(ctx context.Context, actor utils.Actor, partnerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:   repo,
		rdb:    rdb,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Quote(ctx context.Context, req *request.PricingQuoteRequest) (*response.PricingQuoteResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		return nil, ValidationError("partnerId: Must be a valid UUID")
	}
	if _, err := time.Parse(time.RFC3339, req.StartTimeISO); err != nil {
		return nil, ValidationError("startTimeISO: Must be an RFC 3339 timestamp")
	}

	partner, err := s.repo.Partner.FindByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if partner == nil || !partner.IsActive {
		return nil, ErrPartnerNotFound
	}
	if err := ValidatePartnerPricing(partner); err != nil {
		return nil, err
	}

	total := TotalCents(partner, req.PlayersCount)
	deposit, rest := SplitDeposit(total, partner.FeePercent)

	return &response.PricingQuoteResponse{
		Pricing: response.Pricing{
			TotalCents:   total,
			DepositCents: deposit,
			RestCents:    rest,
		},
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		return nil, ValidationError("partnerId: Must be a valid UUID")
	}
	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return nil, ValidationError("slotId: Must be a valid UUID")
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTimeISO)
	if err != nil {
		return nil, ValidationError("startTimeISO: Must be an RFC 3339 timestamp")
	}

	partner, err := s.repo.Partner.FindByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if partner == nil || !partner.IsActive {
		return nil, ErrPartnerNotFound
	}
	if err := ValidatePartnerPricing(partner); err != nil {
		return nil, err
	}

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("find slot: %w", err)
	}
	// Pre-checks give a precise answer when possible; the conditional
	// update inside CreateWithSlotHold stays the authority under races.
	if slot == nil || slot.PartnerID != partnerID || slot.Status != entity.SlotStatusPublished {
		return nil, ErrSlotUnavailable
	}
	if !slot.StartTime.Equal(startTime) {
		return nil, ErrSlotMismatch
	}

	var discountCode *entity.DiscountCode
	if req.DiscountCode != "" {
		discountCode, err = s.repo.Discount.FindActiveByCode(ctx, req.DiscountCode)
		if err != nil {
			return nil, fmt.Errorf("find discount: %w", err)
		}
		if discountCode == nil || (discountCode.PartnerID != nil && *discountCode.PartnerID != partnerID) {
			return nil, ErrDiscountInvalid
		}
	}

	// Deposit and rest split the effective (discounted) price, while the
	// stored total stays the raw list price so the discount is auditable:
	// deposit + rest = total - discount.
	total := TotalCents(partner, req.PlayersCount)
	discounted, amountOff := ApplyDiscount(total, discountCode)
	deposit, rest := SplitDeposit(discounted, partner.FeePercent)

	booking := &entity.Booking{
		OrderID:             utils.GenerateOrderID(),
		SlotID:              slotID,
		PartnerID:           partnerID,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		PlayersCount:        req.PlayersCount,
		TotalAmountCents:    total,
		DepositAmountCents:  deposit,
		RestAmountCents:     rest,
		DiscountAmountCents: amountOff,
		Status:              entity.BookingStatusPending,
	}
	if discountCode != nil {
		booking.DiscountCodeID = &discountCode.ID
	}

	if err := s.repo.Booking.CreateWithSlotHold(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return nil, ErrSlotUnavailable
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreatedTotal.Inc()
	s.invalidateSlotCache(ctx, partnerID.String())

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("slot_id", slotID.String()),
		zap.Int64("deposit_cents", deposit),
	)

	resp := response.BookingToResponse(booking, slot.StartTime)
	return &resp, nil
}

func (s *bookingService) InitiatePayment(ctx context.Context, bookingID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ValidationError("bookingId: Must be a valid UUID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, ErrBookingState
	}

	paid, err := s.repo.Payment.HasPaidDeposit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check deposit: %w", err)
	}
	if paid {
		return nil, ErrBookingState
	}

	payment := &entity.Payment{
		BookingID:         id,
		Type:              entity.PaymentTypeDeposit,
		ProviderPaymentID: utils.GeneratePaymentRef(),
		Status:            entity.PaymentStatusCreated,
		AmountCents:       booking.DepositAmountCents,
		Currency:          s.config.Booking.Currency,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment initiated",
		zap.String("booking_id", bookingID),
		zap.String("provider_payment_id", payment.ProviderPaymentID),
		zap.Int64("amount_cents", payment.AmountCents),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *bookingService) GetPaymentStatus(ctx context.Context, bookingID string) (*response.PaymentStatusResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ValidationError("bookingId: Must be a valid UUID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	resp := &response.PaymentStatusResponse{
		BookingStatus: string(booking.Status),
		Confirmed:     booking.Status == entity.BookingStatusConfirmed,
	}

	payment, err := s.repo.Payment.FindLatestByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment != nil {
		p := response.PaymentToResponse(payment)
		resp.Payment = &p
	}
	return resp, nil
}

func (s *bookingService) GetPartnerBookings(ctx context.Context, actor utils.Actor, partnerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	scope, err := resolvePartnerScope(actor, partnerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByPartner(ctx, scope, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("partner_id", scope.String()))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByPartner(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	slotTimes := make(map[uuid.UUID]time.Time)
	for i, booking := range bookings {
		startTime, ok := slotTimes[booking.SlotID]
		if !ok {
			slot, err := s.repo.Slot.FindByID(ctx, booking.SlotID)
			if err != nil {
				return nil, fmt.Errorf("find slot: %w", err)
			}
			if slot != nil {
				startTime = slot.StartTime
			}
			slotTimes[booking.SlotID] = startTime
		}
		out[i] = response.BookingToResponse(booking, startTime)
	}

	return response.NewPaginatedResponse(out, req.Page, req.Limit(), total), nil
}

func (s *bookingService) invalidateSlotCache(ctx context.Context, partnerID string) {
	key := cache.SlotsKey(partnerID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn("Slot cache invalidation failed", zap.Error(err), zap.String("key", key))
	}
}
