package usecase_test

import (
	"context"
	"testing"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/data/repository/mocks"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func depositPayment(bookingID uuid.UUID, ref string) *entity.Payment {
	payment := &entity.Payment{
		BookingID:         bookingID,
		Type:              entity.PaymentTypeDeposit,
		ProviderPaymentID: ref,
		Status:            entity.PaymentStatusPending,
		AmountCents:       900,
		Currency:          "EUR",
	}
	payment.ID = uuid.New()
	return payment
}

func TestHandleWebhook_PaidConfirmsBooking(t *testing.T) {
	mockPaymentRepo := mocks.NewPaymentRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	repo := &repository.Repository{Payment: mockPaymentRepo, Booking: mockBookingRepo}
	service := usecase.NewPaymentService(repo, zap.NewNop())

	ctx := context.Background()
	bookingID := uuid.New()
	payment := depositPayment(bookingID, "pay_abc")

	mockPaymentRepo.On("FindByProviderID", ctx, "pay_abc").Return(payment, nil)
	mockPaymentRepo.On("UpdateStatus", ctx, payment.ID, entity.PaymentStatusPaid,
		mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).Return(nil)
	mockBookingRepo.On("ConfirmDepositPaid", ctx, bookingID, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	err := service.HandleWebhook(ctx, &request.PaymentWebhookRequest{
		ProviderPaymentID: "pay_abc",
		Status:            "PAID",
		Method:            "card",
		PaidAtISO:         time.Now().UTC().Format(time.RFC3339),
	})

	assert.NoError(t, err)
}

func TestHandleWebhook_LatePaymentKeepsBookingCancelled(t *testing.T) {
	mockPaymentRepo := mocks.NewPaymentRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	repo := &repository.Repository{Payment: mockPaymentRepo, Booking: mockBookingRepo}
	service := usecase.NewPaymentService(repo, zap.NewNop())

	ctx := context.Background()
	bookingID := uuid.New()
	payment := depositPayment(bookingID, "pay_late")

	cancelled := &entity.Booking{Status: entity.BookingStatusCancelled}
	cancelled.ID = bookingID

	mockPaymentRepo.On("FindByProviderID", ctx, "pay_late").Return(payment, nil)
	mockPaymentRepo.On("UpdateStatus", ctx, payment.ID, entity.PaymentStatusPaid,
		mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).Return(nil)
	// The reconciler already cancelled the booking; the confirm is a no-op.
	mockBookingRepo.On("ConfirmDepositPaid", ctx, bookingID, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	mockBookingRepo.On("FindByID", ctx, bookingID).Return(cancelled, nil)

	err := service.HandleWebhook(ctx, &request.PaymentWebhookRequest{
		ProviderPaymentID: "pay_late",
		Status:            "PAID",
	})

	assert.ErrorIs(t, err, usecase.ErrLatePayment)
}

func TestHandleWebhook_DuplicatePaidIsIdempotent(t *testing.T) {
	mockPaymentRepo := mocks.NewPaymentRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	repo := &repository.Repository{Payment: mockPaymentRepo, Booking: mockBookingRepo}
	service := usecase.NewPaymentService(repo, zap.NewNop())

	ctx := context.Background()
	bookingID := uuid.New()
	payment := depositPayment(bookingID, "pay_dup")

	confirmed := &entity.Booking{Status: entity.BookingStatusConfirmed}
	confirmed.ID = bookingID

	mockPaymentRepo.On("FindByProviderID", ctx, "pay_dup").Return(payment, nil)
	mockPaymentRepo.On("UpdateStatus", ctx, payment.ID, entity.PaymentStatusPaid,
		mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).Return(nil)
	mockBookingRepo.On("ConfirmDepositPaid", ctx, bookingID, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	mockBookingRepo.On("FindByID", ctx, bookingID).Return(confirmed, nil)

	err := service.HandleWebhook(ctx, &request.PaymentWebhookRequest{
		ProviderPaymentID: "pay_dup",
		Status:            "PAID",
	})

	assert.NoError(t, err)
}

func TestHandleWebhook_FailedDoesNotTouchBooking(t *testing.T) {
	mockPaymentRepo := mocks.NewPaymentRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	repo := &repository.Repository{Payment: mockPaymentRepo, Booking: mockBookingRepo}
	service := usecase.NewPaymentService(repo, zap.NewNop())

	ctx := context.Background()
	payment := depositPayment(uuid.New(), "pay_fail")

	mockPaymentRepo.On("FindByProviderID", ctx, "pay_fail").Return(payment, nil)
	mockPaymentRepo.On("UpdateStatus", ctx, payment.ID, entity.PaymentStatusFailed,
		mock.AnythingOfType("*string"), (*time.Time)(nil)).Return(nil)

	err := service.HandleWebhook(ctx, &request.PaymentWebhookRequest{
		ProviderPaymentID: "pay_fail",
		Status:            "FAILED",
		Method:            "card",
	})

	assert.NoError(t, err)
	mockBookingRepo.AssertNotCalled(t, "ConfirmDepositPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleWebhook_UnknownProviderID(t *testing.T) {
	mockPaymentRepo := mocks.NewPaymentRepository(t)
	repo := &repository.Repository{Payment: mockPaymentRepo}
	service := usecase.NewPaymentService(repo, zap.NewNop())

	ctx := context.Background()
	mockPaymentRepo.On("FindByProviderID", ctx, "pay_ghost").Return((*entity.Payment)(nil), nil)

	err := service.HandleWebhook(ctx, &request.PaymentWebhookRequest{
		ProviderPaymentID: "pay_ghost",
		Status:            "PAID",
	})

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestGetRefundQueue_AdminOnly(t *testing.T) {
	mockPaymentRepo := mocks.NewPaymentRepository(t)
	repo := &repository.Repository{Payment: mockPaymentRepo}
	service := usecase.NewPaymentService(repo, zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()

	_, err := service.GetRefundQueue(ctx, partnerActor(partnerID))
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	mockPaymentRepo.On("FindRefundQueue", ctx).Return([]*entity.Payment{
		depositPayment(uuid.New(), "pay_refund_me"),
	}, nil)

	payments, err := service.GetRefundQueue(ctx, utils.SystemActor)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
}
