package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/data/repository/mocks"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReleaseStale_ReleasesUnpaidBookings(t *testing.T) {
	mockBookingRepo := mocks.NewBookingRepository(t)
	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{Booking: mockBookingRepo}
	service := usecase.NewReconcileService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	staleID := uuid.New()
	paidID := uuid.New()

	released := &entity.Booking{PartnerID: partnerID, Status: entity.BookingStatusCancelled}
	released.ID = staleID

	mockBookingRepo.On("FindStalePending", ctx, mock.AnythingOfType("time.Time"), 100).
		Return([]uuid.UUID{staleID, paidID}, nil)
	mockBookingRepo.On("ReleaseIfUnpaid", ctx, staleID).Return(true, nil)
	// The second candidate got its deposit between the scan and release.
	mockBookingRepo.On("ReleaseIfUnpaid", ctx, paidID).Return(false, nil)
	mockBookingRepo.On("FindByID", ctx, staleID).Return(released, nil)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerID)).SetVal(1)

	processed, err := service.ReleaseStale(ctx, utils.SystemActor)

	assert.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestReleaseStale_EmptySweep(t *testing.T) {
	mockBookingRepo := mocks.NewBookingRepository(t)
	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{Booking: mockBookingRepo}
	service := usecase.NewReconcileService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	mockBookingRepo.On("FindStalePending", ctx, mock.AnythingOfType("time.Time"), 100).
		Return([]uuid.UUID{}, nil)

	processed, err := service.ReleaseStale(ctx, utils.SystemActor)

	assert.NoError(t, err)
	assert.Equal(t, 0, processed)
}

func TestReleaseStale_NonAdminForbidden(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	service := usecase.NewReconcileService(&repository.Repository{}, rdb, testConfig(), zap.NewNop())

	partnerID := uuid.New()
	_, err := service.ReleaseStale(context.Background(), partnerActor(partnerID))

	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestReleaseStale_ErrorOnOneBookingContinues(t *testing.T) {
	mockBookingRepo := mocks.NewBookingRepository(t)
	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{Booking: mockBookingRepo}
	service := usecase.NewReconcileService(repo, rdb, testConfig(), zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	brokenID := uuid.New()
	goodID := uuid.New()

	released := &entity.Booking{PartnerID: partnerID, Status: entity.BookingStatusCancelled}
	released.ID = goodID

	mockBookingRepo.On("FindStalePending", ctx, mock.AnythingOfType("time.Time"), 100).
		Return([]uuid.UUID{brokenID, goodID}, nil)
	mockBookingRepo.On("ReleaseIfUnpaid", ctx, brokenID).Return(false, assert.AnError)
	mockBookingRepo.On("ReleaseIfUnpaid", ctx, goodID).Return(true, nil)
	mockBookingRepo.On("FindByID", ctx, goodID).Return(released, nil)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerID)).SetVal(1)

	processed, err := service.ReleaseStale(ctx, utils.SystemActor)

	assert.NoError(t, err)
	assert.Equal(t, 1, processed)
}
