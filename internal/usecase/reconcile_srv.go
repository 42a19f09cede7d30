package usecase

import (
	"context"
	"fmt"
	"time"

	"partner-booking/internal/data/repository"
	"partner-booking/pkg/cache"
	"partner-booking/pkg/metrics"
	"partner-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// reconcileBatchSize bounds how many stale bookings one sweep touches.
const reconcileBatchSize = 100

type ReconcileService interface {
	// ReleaseStale cancels PENDING bookings whose deposit never arrived
	// within the hold TTL and puts their slots back to PUBLISHED. Each
	// release is an independent conditional transaction, so a deposit
	// landing mid-sweep keeps its booking.
	ReleaseStale(ctx context.Context, actor utils.Actor) (int, error)

	// RunWorker sweeps on an interval until the context is cancelled.
	RunWorker(ctx context.Context)
}

type reconcileService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	config *utils.Config
	log    *zap.Logger
}

func NewReconcileService(
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) ReconcileService {
	return &reconcileService{
		repo:   repo,
		rdb:    rdb,
		config: config,
		log:    log.With(zap.String("service", "reconcile")),
	}
}

func (s *reconcileService) ReleaseStale(ctx context.Context, actor utils.Actor) (int, error) {
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}
	metrics.ReconcileRunsTotal.Inc()

	cutoff := time.Now().Add(-time.Duration(s.config.Booking.HoldTTLMinutes) * time.Minute)
	stale, err := s.repo.Booking.FindStalePending(ctx, cutoff, reconcileBatchSize)
	if err != nil {
		s.log.Error("Failed to find stale bookings", zap.Error(err))
		return 0, fmt.Errorf("find stale bookings: %w", err)
	}

	released := 0
	for _, bookingID := range stale {
		ok, err := s.repo.Booking.ReleaseIfUnpaid(ctx, bookingID)
		if err != nil {
			s.log.Error("Failed to release booking",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
			)
			continue
		}
		if !ok {
			// Paid or already cancelled between the scan and the release.
			continue
		}
		released++
		metrics.SlotsReleasedTotal.Inc()

		booking, err := s.repo.Booking.FindByID(ctx, bookingID)
		if err == nil && booking != nil {
			key := cache.SlotsKey(booking.PartnerID.String())
			if err := s.rdb.Del(ctx, key).Err(); err != nil {
				s.log.Warn("Slot cache invalidation failed", zap.Error(err), zap.String("key", key))
			}
		}
	}

	if len(stale) > 0 {
		s.log.Info("Reconcile sweep finished",
			zap.Int("candidates", len(stale)),
			zap.Int("released", released),
		)
	}
	return released, nil
}

func (s *reconcileService) RunWorker(ctx context.Context) {
	interval := time.Duration(s.config.Booking.ReconcileIntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("Reconcile worker started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Reconcile worker stopped")
			return
		case <-ticker.C:
			if _, err := s.ReleaseStale(ctx, utils.SystemActor); err != nil {
				s.log.Error("Reconcile sweep failed", zap.Error(err))
			}
			if err := s.repo.Session.CleanExpiredSessions(ctx); err != nil {
				s.log.Error("Session cleanup failed", zap.Error(err))
			}
		}
	}
}
