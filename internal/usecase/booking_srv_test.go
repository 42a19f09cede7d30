package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/data/repository/mocks"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			HoldTTLMinutes:           30,
			ReconcileIntervalMinutes: 5,
			Currency:                 "EUR",
		},
	}
}

func activePartner(id uuid.UUID) *entity.Partner {
	partner := &entity.Partner{
		Name:            "Puzzle Cellar",
		Slug:            "puzzle-cellar",
		Price1PaxCents:  4000,
		Price2PlusCents: 1500,
		FeePercent:      30,
		IsActive:        true,
	}
	partner.ID = id
	return partner
}

func TestCreateBooking_Success(t *testing.T) {
	mockPartnerRepo := mocks.NewPartnerRepository(t)
	mockSlotRepo := mocks.NewSlotRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{
		Partner: mockPartnerRepo,
		Slot:    mockSlotRepo,
		Booking: mockBookingRepo,
	}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	slotID := uuid.New()
	startTime := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	slot := &entity.Slot{
		PartnerID: partnerID,
		StartTime: startTime,
		Status:    entity.SlotStatusPublished,
	}
	slot.ID = slotID

	mockPartnerRepo.On("FindByID", ctx, partnerID).Return(activePartner(partnerID), nil)
	mockSlotRepo.On("FindByID", ctx, slotID).Return(slot, nil)
	mockBookingRepo.On("CreateWithSlotHold", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerID)).SetVal(1)

	resp, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
		PartnerID:     partnerID.String(),
		SlotID:        slotID.String(),
		StartTimeISO:  startTime.Format(time.RFC3339),
		PlayersCount:  2,
		CustomerName:  "Mira Sanchez",
		CustomerEmail: "mira@example.com",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, int64(3000), resp.TotalAmountCents)
		assert.Equal(t, int64(900), resp.DepositAmountCents)
		assert.Equal(t, int64(2100), resp.RestAmountCents)
		assert.Equal(t, "PENDING", resp.Status)
		assert.NotEmpty(t, resp.OrderID)
	}

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	mockPartnerRepo := mocks.NewPartnerRepository(t)
	mockSlotRepo := mocks.NewSlotRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{
		Partner: mockPartnerRepo,
		Slot:    mockSlotRepo,
		Booking: mockBookingRepo,
	}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	slotID := uuid.New()
	startTime := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	slot := &entity.Slot{
		PartnerID: partnerID,
		StartTime: startTime,
		Status:    entity.SlotStatusPublished,
	}
	slot.ID = slotID

	mockPartnerRepo.On("FindByID", ctx, partnerID).Return(activePartner(partnerID), nil)
	mockSlotRepo.On("FindByID", ctx, slotID).Return(slot, nil)
	// Someone else won the conditional flip between our read and write.
	mockBookingRepo.On("CreateWithSlotHold", ctx, mock.AnythingOfType("*entity.Booking")).
		Return(repository.ErrSlotUnavailable)

	resp, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
		PartnerID:     partnerID.String(),
		SlotID:        slotID.String(),
		StartTimeISO:  startTime.Format(time.RFC3339),
		PlayersCount:  2,
		CustomerName:  "Mira Sanchez",
		CustomerEmail: "mira@example.com",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrSlotUnavailable)
}

func TestCreateBooking_StartTimeMismatch(t *testing.T) {
	mockPartnerRepo := mocks.NewPartnerRepository(t)
	mockSlotRepo := mocks.NewSlotRepository(t)

	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{
		Partner: mockPartnerRepo,
		Slot:    mockSlotRepo,
	}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	slotID := uuid.New()

	slot := &entity.Slot{
		PartnerID: partnerID,
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Status:    entity.SlotStatusPublished,
	}
	slot.ID = slotID

	mockPartnerRepo.On("FindByID", ctx, partnerID).Return(activePartner(partnerID), nil)
	mockSlotRepo.On("FindByID", ctx, slotID).Return(slot, nil)

	resp, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
		PartnerID:     partnerID.String(),
		SlotID:        slotID.String(),
		StartTimeISO:  "2026-09-01T11:00:00Z",
		PlayersCount:  2,
		CustomerName:  "Mira Sanchez",
		CustomerEmail: "mira@example.com",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrSlotMismatch)
}

func TestCreateBooking_WithDiscount(t *testing.T) {
	mockPartnerRepo := mocks.NewPartnerRepository(t)
	mockSlotRepo := mocks.NewSlotRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockDiscountRepo := mocks.NewDiscountRepository(t)

	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{
		Partner:  mockPartnerRepo,
		Slot:     mockSlotRepo,
		Booking:  mockBookingRepo,
		Discount: mockDiscountRepo,
	}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	slotID := uuid.New()
	startTime := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	slot := &entity.Slot{
		PartnerID: partnerID,
		StartTime: startTime,
		Status:    entity.SlotStatusPublished,
	}
	slot.ID = slotID

	percentOff := 10
	code := &entity.DiscountCode{
		Code:       "SAVE10",
		PercentOff: &percentOff,
		IsActive:   true,
	}
	code.ID = uuid.New()

	mockPartnerRepo.On("FindByID", ctx, partnerID).Return(activePartner(partnerID), nil)
	mockSlotRepo.On("FindByID", ctx, slotID).Return(slot, nil)
	mockDiscountRepo.On("FindActiveByCode", ctx, "SAVE10").Return(code, nil)
	mockBookingRepo.On("CreateWithSlotHold", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerID)).SetVal(1)

	resp, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
		PartnerID:     partnerID.String(),
		SlotID:        slotID.String(),
		StartTimeISO:  startTime.Format(time.RFC3339),
		PlayersCount:  2,
		CustomerName:  "Mira Sanchez",
		CustomerEmail: "mira@example.com",
		DiscountCode:  "SAVE10",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, int64(3000), resp.TotalAmountCents)
		assert.Equal(t, int64(300), resp.DiscountAmountCents)
		assert.Equal(t, int64(810), resp.DepositAmountCents)
		assert.Equal(t, int64(1890), resp.RestAmountCents)
		assert.Equal(t, resp.TotalAmountCents-resp.DiscountAmountCents,
			resp.DepositAmountCents+resp.RestAmountCents,
			"deposit and rest must split the discounted price")
	}
}

func TestQuote_Vectors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		feePercent  int
		players     int
		wantTotal   int64
		wantDeposit int64
		wantRest    int64
	}{
		{"two players at 30 percent", 30, 2, 3000, 900, 2100},
		{"two players at 33 percent", 33, 2, 3000, 990, 2010},
		{"solo rate", 30, 1, 4000, 1200, 2800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPartnerRepo := mocks.NewPartnerRepository(t)
			rdb, _ := redismock.NewClientMock()
			repo := &repository.Repository{Partner: mockPartnerRepo}
			service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

			partnerID := uuid.New()
			partner := activePartner(partnerID)
			partner.FeePercent = tt.feePercent
			mockPartnerRepo.On("FindByID", ctx, partnerID).Return(partner, nil)

			resp, err := service.Quote(ctx, &request.PricingQuoteRequest{
				PartnerID:    partnerID.String(),
				StartTimeISO: "2026-09-01T10:00:00Z",
				PlayersCount: tt.players,
			})

			assert.NoError(t, err)
			if assert.NotNil(t, resp) {
				assert.Equal(t, tt.wantTotal, resp.Pricing.TotalCents)
				assert.Equal(t, tt.wantDeposit, resp.Pricing.DepositCents)
				assert.Equal(t, tt.wantRest, resp.Pricing.RestCents)
			}
		})
	}
}

func TestQuote_InactivePartner(t *testing.T) {
	mockPartnerRepo := mocks.NewPartnerRepository(t)
	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{Partner: mockPartnerRepo}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	partner := activePartner(partnerID)
	partner.IsActive = false
	mockPartnerRepo.On("FindByID", ctx, partnerID).Return(partner, nil)

	resp, err := service.Quote(ctx, &request.PricingQuoteRequest{
		PartnerID:    partnerID.String(),
		StartTimeISO: "2026-09-01T10:00:00Z",
		PlayersCount: 2,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrPartnerNotFound)
}

func TestInitiatePayment_CreatesDepositAttempt(t *testing.T) {
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockPaymentRepo := mocks.NewPaymentRepository(t)

	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Payment: mockPaymentRepo,
	}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	bookingID := uuid.New()

	booking := &entity.Booking{
		Status:             entity.BookingStatusPending,
		DepositAmountCents: 900,
	}
	booking.ID = bookingID

	mockBookingRepo.On("FindByID", ctx, bookingID).Return(booking, nil)
	mockPaymentRepo.On("HasPaidDeposit", ctx, bookingID).Return(false, nil)
	mockPaymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	resp, err := service.InitiatePayment(ctx, bookingID.String())

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, int64(900), resp.AmountCents)
		assert.Equal(t, "EUR", resp.Currency)
		assert.Equal(t, string(entity.PaymentStatusCreated), resp.Status)
		assert.NotEmpty(t, resp.ProviderPaymentID)
	}
}

func TestInitiatePayment_RejectsCancelledBooking(t *testing.T) {
	mockBookingRepo := mocks.NewBookingRepository(t)

	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{Booking: mockBookingRepo}
	service := usecase.NewBookingService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	bookingID := uuid.New()

	booking := &entity.Booking{Status: entity.BookingStatusCancelled}
	booking.ID = bookingID
	mockBookingRepo.On("FindByID", ctx, bookingID).Return(booking, nil)

	resp, err := service.InitiatePayment(ctx, bookingID.String())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrBookingState)
}
