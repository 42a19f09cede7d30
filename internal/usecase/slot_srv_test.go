package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/internal/data/repository"
	"partner-booking/internal/data/repository/mocks"
	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func partnerActor(partnerID uuid.UUID) utils.Actor {
	return utils.Actor{
		UserID:    uuid.New(),
		Role:      "partner",
		PartnerID: &partnerID,
	}
}

func TestBatchUpdateStatus_SkipsBookedSlots(t *testing.T) {
	mockSlotRepo := mocks.NewSlotRepository(t)
	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{Slot: mockSlotRepo}
	service := usecase.NewSlotService(repo, rdb, zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	actor := partnerActor(partnerID)

	// Three slots requested; one is BOOKED and stays untouched.
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	mockSlotRepo.On("CountForeign", ctx, mock.AnythingOfType("[]uuid.UUID"), partnerID).Return(int64(0), nil)
	mockSlotRepo.On("BatchUpdateStatus", ctx, mock.AnythingOfType("[]uuid.UUID"), entity.SlotStatusPublished).
		Return(int64(2), []uuid.UUID{partnerID}, nil)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerID)).SetVal(1)

	resp, err := service.BatchUpdateStatus(ctx, actor, &request.BatchSlotStatusRequest{
		SlotIDs: ids,
		Status:  "PUBLISHED",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.True(t, resp.Ok)
		assert.Equal(t, int64(2), resp.Updated)
	}
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestBatchUpdateStatus_AdminBatchDropsEachPartnerCache(t *testing.T) {
	mockSlotRepo := mocks.NewSlotRepository(t)
	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{Slot: mockSlotRepo}
	service := usecase.NewSlotService(repo, rdb, zap.NewNop())

	ctx := context.Background()
	partnerA := uuid.New()
	partnerB := uuid.New()

	// An admin batch spanning two partners drops both availability caches.
	mockSlotRepo.On("BatchUpdateStatus", ctx, mock.AnythingOfType("[]uuid.UUID"), entity.SlotStatusDraft).
		Return(int64(2), []uuid.UUID{partnerA, partnerB}, nil)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerA)).SetVal(1)
	mockRedis.ExpectDel(fmt.Sprintf("slots:%s", partnerB)).SetVal(1)

	resp, err := service.BatchUpdateStatus(ctx, utils.SystemActor, &request.BatchSlotStatusRequest{
		SlotIDs: []string{uuid.NewString(), uuid.NewString()},
		Status:  "DRAFT",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, int64(2), resp.Updated)
	}
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestBatchUpdateStatus_ForeignSlotFailsWholeBatch(t *testing.T) {
	mockSlotRepo := mocks.NewSlotRepository(t)
	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{Slot: mockSlotRepo}
	service := usecase.NewSlotService(repo, rdb, zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	actor := partnerActor(partnerID)

	mockSlotRepo.On("CountForeign", ctx, mock.AnythingOfType("[]uuid.UUID"), partnerID).Return(int64(1), nil)

	resp, err := service.BatchUpdateStatus(ctx, actor, &request.BatchSlotStatusRequest{
		SlotIDs: []string{uuid.NewString(), uuid.NewString()},
		Status:  "PUBLISHED",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, usecase.ErrForbidden)
	mockSlotRepo.AssertNotCalled(t, "BatchUpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBatchUpdateStatus_RejectsInvalidTarget(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	service := usecase.NewSlotService(&repository.Repository{}, rdb, zap.NewNop())

	ctx := context.Background()
	actor := partnerActor(uuid.New())

	// BOOKED is never a valid target status.
	resp, err := service.BatchUpdateStatus(ctx, actor, &request.BatchSlotStatusRequest{
		SlotIDs: []string{uuid.NewString()},
		Status:  "BOOKED",
	})

	assert.Nil(t, resp)
	svcErr, ok := usecase.AsServiceError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "VALIDATION_FAILED", svcErr.Code)
	}
}

func TestGetPublishedSlots_CacheHit(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	// No repository expectations: a cache hit never reaches the DB.
	service := usecase.NewSlotService(&repository.Repository{}, rdb, zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()

	cached := []response.SlotResponse{
		{
			ID:        uuid.NewString(),
			PartnerID: partnerID.String(),
			StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			Status:    "PUBLISHED",
		},
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	mockRedis.ExpectGet(fmt.Sprintf("slots:%s", partnerID)).SetVal(string(payload))

	slots, err := service.GetPublishedSlots(ctx, partnerID.String())

	assert.NoError(t, err)
	assert.Equal(t, cached, slots)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGetPublishedSlots_CacheMissReadsDB(t *testing.T) {
	mockSlotRepo := mocks.NewSlotRepository(t)
	mockPartnerRepo := mocks.NewPartnerRepository(t)
	rdb, mockRedis := redismock.NewClientMock()
	repo := &repository.Repository{Slot: mockSlotRepo, Partner: mockPartnerRepo}
	service := usecase.NewSlotService(repo, rdb, zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()

	partner := &entity.Partner{IsActive: true, Price1PaxCents: 4000, Price2PlusCents: 1500, FeePercent: 30}
	partner.ID = partnerID

	slot := &entity.Slot{
		PartnerID: partnerID,
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Status:    entity.SlotStatusPublished,
	}
	slot.ID = uuid.New()

	key := fmt.Sprintf("slots:%s", partnerID)
	mockRedis.ExpectGet(key).RedisNil()
	mockPartnerRepo.On("FindByID", ctx, partnerID).Return(partner, nil)
	mockSlotRepo.On("FindPublishedUpcoming", ctx, partnerID, mock.AnythingOfType("time.Time")).
		Return([]*entity.Slot{slot}, nil)

	expected, err := json.Marshal(response.SlotsToResponse([]*entity.Slot{slot}))
	assert.NoError(t, err)
	mockRedis.ExpectSet(key, expected, 60*time.Second).SetVal("OK")

	slots, err := service.GetPublishedSlots(ctx, partnerID.String())

	assert.NoError(t, err)
	if assert.Len(t, slots, 1) {
		assert.Equal(t, slot.ID.String(), slots[0].ID)
	}
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGetStatusCounts(t *testing.T) {
	mockSlotRepo := mocks.NewSlotRepository(t)
	rdb, _ := redismock.NewClientMock()
	repo := &repository.Repository{Slot: mockSlotRepo}
	service := usecase.NewSlotService(repo, rdb, zap.NewNop())

	ctx := context.Background()
	partnerID := uuid.New()
	actor := partnerActor(partnerID)

	mockSlotRepo.On("CountByStatus", ctx, partnerID).Return(map[entity.SlotStatus]int64{
		entity.SlotStatusDraft:     3,
		entity.SlotStatusPublished: 5,
		entity.SlotStatusBooked:    2,
	}, nil)

	counts, err := service.GetStatusCounts(ctx, actor, "")

	assert.NoError(t, err)
	if assert.NotNil(t, counts) {
		assert.Equal(t, int64(3), counts.Draft)
		assert.Equal(t, int64(5), counts.Published)
		assert.Equal(t, int64(2), counts.Booked)
	}
}
