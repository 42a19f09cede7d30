package usecase

import (
	"context"
	"fmt"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/pkg/metrics"
	"partner-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	// HandleWebhook applies a provider status change to the payment row
	// and, on PAID, promotes the booking PENDING -> CONFIRMED. A PAID
	// webhook for an already-cancelled booking returns ErrLatePayment;
	// the money is recorded and queued for refund, the slot stays free.
	HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error

	GetRefundQueue(ctx context.Context, actor utils.Actor) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ValidationError(utils.FormatValidationErrors(errs))
	}

	payment, err := s.repo.Payment.FindByProviderID(ctx, req.ProviderPaymentID)
	if err != nil {
		return fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return ErrNotFound
	}

	var paidAt *time.Time
	if req.PaidAtISO != "" {
		t, err := time.Parse(time.RFC3339, req.PaidAtISO)
		if err != nil {
			return ValidationError("paidAtISO: Must be an RFC 3339 timestamp")
		}
		paidAt = &t
	}

	status := entity.PaymentStatus(req.Status)
	var method *string
	if req.Method != "" {
		method = &req.Method
	}
	if status == entity.PaymentStatusPaid && paidAt == nil {
		now := time.Now()
		paidAt = &now
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, status, method, paidAt); err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("provider_payment_id", req.ProviderPaymentID),
		)
		return fmt.Errorf("update payment: %w", err)
	}

	s.log.Info("Payment status updated",
		zap.String("provider_payment_id", req.ProviderPaymentID),
		zap.String("status", req.Status),
	)

	if status != entity.PaymentStatusPaid {
		return nil
	}

	confirmed, err := s.repo.Booking.ConfirmDepositPaid(ctx, payment.BookingID, *paidAt)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}
	if confirmed {
		metrics.BookingsConfirmedTotal.Inc()
		s.log.Info("Booking confirmed",
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil
	}

	// The booking was no longer PENDING. A duplicate webhook for an
	// already-confirmed booking is harmless; money arriving after the
	// reconciler cancelled the booking is not.
	booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking != nil && booking.Status == entity.BookingStatusCancelled {
		metrics.LatePaymentsTotal.Inc()
		s.log.Warn("Deposit paid for cancelled booking, refund required",
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("provider_payment_id", req.ProviderPaymentID),
			zap.Int64("amount_cents", payment.AmountCents),
		)
		return ErrLatePayment
	}
	return nil
}

func (s *paymentService) GetRefundQueue(ctx context.Context, actor utils.Actor) ([]response.PaymentResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	payments, err := s.repo.Payment.FindRefundQueue(ctx)
	if err != nil {
		s.log.Error("Failed to list refund queue", zap.Error(err))
		return nil, fmt.Errorf("list refund queue: %w", err)
	}

	out := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		out[i] = response.PaymentToResponse(payment)
	}
	return out, nil
}
