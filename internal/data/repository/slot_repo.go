package repository

import (
	"context"
	"fmt"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID, limit, offset int) ([]*entity.Slot, error)
	CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error)
	FindPublishedUpcoming(ctx context.Context, partnerID uuid.UUID, from time.Time) ([]*entity.Slot, error)

	// BatchUpdateStatus flips every listed slot that is not BOOKED to the
	// target status in one conditional write, stamping or clearing
	// published_at. BOOKED slots are skipped, not errored. Returns the
	// number of rows actually updated and the distinct partners those
	// rows belong to, so callers can drop per-partner caches.
	BatchUpdateStatus(ctx context.Context, ids []uuid.UUID, status entity.SlotStatus) (int64, []uuid.UUID, error)

	// CountForeign reports how many of the given slots do NOT belong to
	// the partner. Used for scope checks before a batch mutation.
	CountForeign(ctx context.Context, ids []uuid.UUID, partnerID uuid.UUID) (int64, error)

	// CountByStatus groups a partner's slots by status for the dashboard.
	CountByStatus(ctx context.Context, partnerID uuid.UUID) (map[entity.SlotStatus]int64, error)
}

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

const slotColumns = `id, partner_id, start_time, status, published_at, created_at, updated_at`

func (r *slotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	slot.Stamp()

	query := `
		INSERT INTO slots (id, partner_id, start_time, status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.PartnerID,
		slot.StartTime,
		slot.Status,
		slot.PublishedAt,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("partner_id", slot.PartnerID.String()),
			zap.Time("start_time", slot.StartTime),
		)
		return fmt.Errorf("create slot: %w", err)
	}

	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	var slot entity.Slot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.PartnerID,
		&slot.StartTime,
		&slot.Status,
		&slot.PublishedAt,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}

	return &slot, nil
}

func (r *slotRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, limit, offset int) ([]*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE partner_id = $1
		ORDER BY start_time
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, partnerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find slots by partner",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, fmt.Errorf("find slots by partner %s: %w", partnerID.String(), err)
	}
	defer rows.Close()

	return r.collectSlots(rows)
}

func (r *slotRepository) CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM slots WHERE partner_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, partnerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count slots by partner",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return 0, fmt.Errorf("count slots by partner %s: %w", partnerID.String(), err)
	}

	return count, nil
}

func (r *slotRepository) FindPublishedUpcoming(ctx context.Context, partnerID uuid.UUID, from time.Time) ([]*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE partner_id = $1 AND status = 'PUBLISHED' AND start_time > $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, partnerID, from)
	if err != nil {
		r.log.Error("Failed to find published slots",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, fmt.Errorf("find published slots for partner %s: %w", partnerID.String(), err)
	}
	defer rows.Close()

	return r.collectSlots(rows)
}

func (r *slotRepository) BatchUpdateStatus(ctx context.Context, ids []uuid.UUID, status entity.SlotStatus) (int64, []uuid.UUID, error) {
	// The status guard and the write are one statement so a concurrent
	// booking can never be unpublished from under itself.
	query := `
		UPDATE slots
		SET status = $2,
		    published_at = CASE WHEN $2 = 'PUBLISHED' THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE id = ANY($1) AND status <> 'BOOKED'
		RETURNING partner_id
	`

	rows, err := r.db.Query(ctx, query, ids, status)
	if err != nil {
		r.log.Error("Failed to batch update slot status",
			zap.Error(err),
			zap.Int("slot_count", len(ids)),
			zap.String("status", string(status)),
		)
		return 0, nil, fmt.Errorf("batch update %d slots to %s: %w", len(ids), string(status), err)
	}
	defer rows.Close()

	var updated int64
	seen := make(map[uuid.UUID]struct{})
	var partners []uuid.UUID
	for rows.Next() {
		var partnerID uuid.UUID
		if err := rows.Scan(&partnerID); err != nil {
			r.log.Error("Failed to scan updated slot row", zap.Error(err))
			return 0, nil, fmt.Errorf("scan updated slot row: %w", err)
		}
		updated++
		if _, ok := seen[partnerID]; !ok {
			seen[partnerID] = struct{}{}
			partners = append(partners, partnerID)
		}
	}

	return updated, partners, nil
}

func (r *slotRepository) CountForeign(ctx context.Context, ids []uuid.UUID, partnerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM slots WHERE id = ANY($1) AND partner_id <> $2`

	var count int64
	err := r.db.QueryRow(ctx, query, ids, partnerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count foreign slots",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return 0, fmt.Errorf("count foreign slots: %w", err)
	}

	return count, nil
}

func (r *slotRepository) CountByStatus(ctx context.Context, partnerID uuid.UUID) (map[entity.SlotStatus]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM slots
		WHERE partner_id = $1
		GROUP BY status
	`

	rows, err := r.db.Query(ctx, query, partnerID)
	if err != nil {
		r.log.Error("Failed to count slots by status",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, fmt.Errorf("count slots by status for partner %s: %w", partnerID.String(), err)
	}
	defer rows.Close()

	counts := make(map[entity.SlotStatus]int64)
	for rows.Next() {
		var status entity.SlotStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan status count row", zap.Error(err))
			return nil, fmt.Errorf("scan status count row: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func (r *slotRepository) collectSlots(rows pgx.Rows) ([]*entity.Slot, error) {
	var slots []*entity.Slot
	for rows.Next() {
		var slot entity.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.PartnerID,
			&slot.StartTime,
			&slot.Status,
			&slot.PublishedAt,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}
