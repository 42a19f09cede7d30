package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-booking/internal/data/entity"
	"partner-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrSlotUnavailable is returned when the conditional slot flip to BOOKED
// affects no row: the slot is gone, unpublished, or taken by a concurrent
// booking.
var ErrSlotUnavailable = errors.New("slot is not available for booking")

type BookingRepository interface {
	// CreateWithSlotHold inserts the PENDING booking and flips its slot
	// PUBLISHED -> BOOKED in one transaction. The flip is a single
	// conditional update; a losing racer gets ErrSlotUnavailable.
	CreateWithSlotHold(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error)

	// FindStalePending lists PENDING bookings created before the cutoff
	// that have no PAID deposit payment.
	FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)

	// ReleaseIfUnpaid cancels the booking and returns its slot to
	// PUBLISHED, in one transaction, but only while the booking is still
	// PENDING and has no PAID deposit. Reports whether anything changed.
	ReleaseIfUnpaid(ctx context.Context, bookingID uuid.UUID) (bool, error)

	// ConfirmDepositPaid flips PENDING -> CONFIRMED and stamps the paid
	// timestamp. Reports false when the booking was not PENDING anymore.
	ConfirmDepositPaid(ctx context.Context, bookingID uuid.UUID, paidAt time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_id, slot_id, partner_id, customer_name, customer_email, customer_phone,
	       players_count, total_amount_cents, deposit_amount_cents, rest_amount_cents,
	       discount_code_id, discount_amount_cents, status, confirmed_at, deposit_paid_at,
	       created_at, updated_at`

func (r *bookingRepository) CreateWithSlotHold(ctx context.Context, booking *entity.Booking) error {
	booking.Stamp()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Compare-and-swap on the slot status. Read-then-write in two steps
	// would allow double booking.
	holdQuery := `
		UPDATE slots
		SET status = 'BOOKED', updated_at = NOW()
		WHERE id = $1 AND status = 'PUBLISHED'
	`

	result, err := tx.Exec(ctx, holdQuery, booking.SlotID)
	if err != nil {
		r.log.Error("Failed to hold slot",
			zap.Error(err),
			zap.String("slot_id", booking.SlotID.String()),
		)
		return fmt.Errorf("hold slot %s: %w", booking.SlotID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrSlotUnavailable
	}

	insertQuery := `
		INSERT INTO bookings (id, order_id, slot_id, partner_id, customer_name, customer_email, customer_phone,
		                      players_count, total_amount_cents, deposit_amount_cents, rest_amount_cents,
		                      discount_code_id, discount_amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.OrderID,
		booking.SlotID,
		booking.PartnerID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.PlayersCount,
		booking.TotalAmountCents,
		booking.DepositAmountCents,
		booking.RestAmountCents,
		booking.DiscountCodeID,
		booking.DiscountAmountCents,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return fmt.Errorf("insert booking %s: %w", booking.OrderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE partner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, partnerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by partner",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, fmt.Errorf("find bookings by partner %s: %w", partnerID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE partner_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, partnerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by partner",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return 0, fmt.Errorf("count bookings by partner %s: %w", partnerID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT b.id
		FROM bookings b
		WHERE b.status = 'PENDING'
		  AND b.created_at < $1
		  AND NOT EXISTS (
		      SELECT 1 FROM payments p
		      WHERE p.booking_id = b.id AND p.type = 'DEPOSIT' AND p.status = 'PAID'
		  )
		ORDER BY b.created_at
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		r.log.Error("Failed to find stale pending bookings",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
		)
		return nil, fmt.Errorf("find stale pending bookings: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan stale booking id", zap.Error(err))
			return nil, fmt.Errorf("scan stale booking id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *bookingRepository) ReleaseIfUnpaid(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin release transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The paid-deposit guard runs inside the same statement that cancels,
	// so a webhook landing between the sweep scan and this write leaves
	// the booking untouched.
	cancelQuery := `
		UPDATE bookings
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1
		  AND status = 'PENDING'
		  AND NOT EXISTS (
		      SELECT 1 FROM payments p
		      WHERE p.booking_id = bookings.id AND p.type = 'DEPOSIT' AND p.status = 'PAID'
		  )
	`

	result, err := tx.Exec(ctx, cancelQuery, bookingID)
	if err != nil {
		r.log.Error("Failed to cancel stale booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("cancel booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		// Already confirmed, already cancelled, or paid meanwhile.
		return false, nil
	}

	releaseQuery := `
		UPDATE slots
		SET status = 'PUBLISHED', updated_at = NOW()
		WHERE id = (SELECT slot_id FROM bookings WHERE id = $1)
		  AND status = 'BOOKED'
	`

	if _, err := tx.Exec(ctx, releaseQuery, bookingID); err != nil {
		r.log.Error("Failed to release slot for booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("release slot for booking %s: %w", bookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit release of booking %s: %w", bookingID.String(), err)
	}

	return true, nil
}

func (r *bookingRepository) ConfirmDepositPaid(ctx context.Context, bookingID uuid.UUID, paidAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'CONFIRMED', confirmed_at = NOW(), deposit_paid_at = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	result, err := r.db.Exec(ctx, query, bookingID, paidAt)
	if err != nil {
		r.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("confirm booking %s: %w", bookingID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.SlotID,
		&booking.PartnerID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.PlayersCount,
		&booking.TotalAmountCents,
		&booking.DepositAmountCents,
		&booking.RestAmountCents,
		&booking.DiscountCodeID,
		&booking.DiscountAmountCents,
		&booking.Status,
		&booking.ConfirmedAt,
		&booking.DepositPaidAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
