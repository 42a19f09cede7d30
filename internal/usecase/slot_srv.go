package usecase

import (
	"context"
	"encoding/json"
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

type SlotService interface {
	CreateSlot(ctx context.Context, actor utils.Actor, req *request.CreateSlotRequest) (*response.SlotResponse, error)

	// BatchUpdateStatus publishes or unpublishes many slots at once.
	// BOOKED slots are silently skipped; the returned count is the number
	// of rows written.
	BatchUpdateStatus(ctx context.Context, actor utils.Actor, req *request.BatchSlotStatusRequest) (*response.BatchSlotStatusResponse, error)

	GetPartnerSlots(ctx context.Context, actor utils.Actor, partnerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SlotResponse], error)
	GetPublishedSlots(ctx context.Context, partnerID string) ([]response.SlotResponse, error)
	GetStatusCounts(ctx context.Context, actor utils.Actor, partnerID string) (*response.SlotStatusCounts, error)
}

type slotService struct {
	repo *repository.Repository
	rdb  *redis.Client
	log  *zap.Logger
}

func NewSlotService(
	repo *repository.Repository,
	rdb *redis.Client,
	log *zap.Logger,
) SlotService {
	return &slotService{
		repo: repo,
		rdb:  rdb,
		log:  log.With(zap.String("service", "slot")),
	}
}

// resolvePartnerScope decides which partner the call operates on. Partner
// users are pinned to their own partner; admins must name one.
func resolvePartnerScope(actor utils.Actor, requested string) (uuid.UUID, error) {
	if actor.PartnerID != nil {
		if requested != "" && requested != actor.PartnerID.String() {
			return uuid.Nil, ErrForbidden
		}
		return *actor.PartnerID, nil
	}
	if !actor.IsAdmin() {
		return uuid.Nil, ErrForbidden
	}
	if requested == "" {
		return uuid.Nil, ValidationError("partnerId: This field is required")
	}
	id, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, ValidationError("partnerId: Must be a valid UUID")
	}
	return id, nil
}

func (s *slotService) CreateSlot(ctx context.Context, actor utils.Actor, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	partnerID, err := resolvePartnerScope(actor, req.PartnerID)
	if err != nil {
		return nil, err
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTimeISO)
	if err != nil {
		return nil, ValidationError("startTimeISO: Must be an RFC 3339 timestamp")
	}

	partner, err := s.repo.Partner.FindByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	slot := &entity.Slot{
		PartnerID: partnerID,
		StartTime: startTime,
		Status:    entity.SlotStatusDraft,
	}
	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("partner_id", partnerID.String()),
		zap.Time("start_time", startTime),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) BatchUpdateStatus(ctx context.Context, actor utils.Actor, req *request.BatchSlotStatusRequest) (*response.BatchSlotStatusResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ValidationError(utils.FormatValidationErrors(errs))
	}

	ids := make([]uuid.UUID, len(req.SlotIDs))
	for i, raw := range req.SlotIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ValidationError("slotIds: Must be a valid UUID")
		}
		ids[i] = id
	}

	// Partner users may only touch their own slots. One alien ID fails
	// the whole batch before anything is written.
	if actor.PartnerID != nil {
		foreign, err := s.repo.Slot.CountForeign(ctx, ids, *actor.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("scope check: %w", err)
		}
		if foreign > 0 {
			return nil, ErrForbidden
		}
	} else if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	updated, partners, err := s.repo.Slot.BatchUpdateStatus(ctx, ids, entity.SlotStatus(req.Status))
	if err != nil {
		s.log.Error("Failed to batch update slot status",
			zap.Error(err),
			zap.Int("slot_count", len(ids)),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("batch update slots: %w", err)
	}

	// Admin batches may span partners, so the cache keys to drop come
	// from the rows actually written, not from the actor.
	for _, partnerID := range partners {
		s.invalidateSlotCache(ctx, partnerID.String())
	}

	s.log.Info("Slot statuses updated",
		zap.Int("requested", len(ids)),
		zap.Int64("updated", updated),
		zap.String("status", req.Status),
	)

	return &response.BatchSlotStatusResponse{Ok: true, Updated: updated}, nil
}

func (s *slotService) GetPartnerSlots(ctx context.Context, actor utils.Actor, partnerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SlotResponse], error) {
	scope, err := resolvePartnerScope(actor, partnerID)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.Slot.FindByPartner(ctx, scope, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list slots", zap.Error(err), zap.String("partner_id", scope.String()))
		return nil, fmt.Errorf("list slots: %w", err)
	}

	total, err := s.repo.Slot.CountByPartner(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("count slots: %w", err)
	}

	return response.NewPaginatedResponse(response.SlotsToResponse(slots), req.Page, req.Limit(), total), nil
}

func (s *slotService) GetPublishedSlots(ctx context.Context, partnerID string) ([]response.SlotResponse, error) {
	id, err := uuid.Parse(partnerID)
	if err != nil {
		return nil, ValidationError("partnerId: Must be a valid UUID")
	}

	key := cache.SlotsKey(partnerID)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var out []response.SlotResponse
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			metrics.SlotCacheHitsTotal.WithLabelValues("hit").Inc()
			return out, nil
		}
	} else if err != redis.Nil {
		// Redis trouble degrades to a DB read, never an error response.
		s.log.Warn("Slot cache read failed", zap.Error(err), zap.String("key", key))
	}
	metrics.SlotCacheHitsTotal.WithLabelValues("miss").Inc()

	partner, err := s.repo.Partner.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if partner == nil || !partner.IsActive {
		return nil, ErrPartnerNotFound
	}

	slots, err := s.repo.Slot.FindPublishedUpcoming(ctx, id, time.Now())
	if err != nil {
		s.log.Error("Failed to list published slots", zap.Error(err), zap.String("partner_id", partnerID))
		return nil, fmt.Errorf("list published slots: %w", err)
	}

	out := response.SlotsToResponse(slots)
	if payload, err := json.Marshal(out); err == nil {
		if err := s.rdb.Set(ctx, key, payload, cache.SlotsTTL).Err(); err != nil {
			s.log.Warn("Slot cache write failed", zap.Error(err), zap.String("key", key))
		}
	}
	return out, nil
}

func (s *slotService) GetStatusCounts(ctx context.Context, actor utils.Actor, partnerID string) (*response.SlotStatusCounts, error) {
	scope, err := resolvePartnerScope(actor, partnerID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Slot.CountByStatus(ctx, scope)
	if err != nil {
		s.log.Error("Failed to count slots by status", zap.Error(err), zap.String("partner_id", scope.String()))
		return nil, fmt.Errorf("count slots: %w", err)
	}

	return &response.SlotStatusCounts{
		Draft:     counts[entity.SlotStatusDraft],
		Published: counts[entity.SlotStatusPublished],
		Booked:    counts[entity.SlotStatusBooked],
	}, nil
}

func (s *slotService) invalidateSlotCache(ctx context.Context, partnerID string) {
	key := cache.SlotsKey(partnerID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn("Slot cache invalidation failed", zap.Error(err), zap.String("key", key))
	}
}
