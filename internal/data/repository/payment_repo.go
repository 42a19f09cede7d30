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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByProviderID(ctx context.Context, providerPaymentID string) (*entity.Payment, error)
	FindLatestByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)

	// HasPaidDeposit reports whether any DEPOSIT payment of the booking is
	// PAID. Any, not just the latest: a retry may fail after an earlier
	// attempt already succeeded.
	HasPaidDeposit(ctx context.Context, bookingID uuid.UUID) (bool, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, method *string, paidAt *time.Time) error

	// FindRefundQueue lists PAID payments whose booking ended up
	// CANCELLED: late webhook arrivals awaiting an out-of-band refund.
	FindRefundQueue(ctx context.Context) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, type, provider_payment_id, status, amount_cents, currency, method, paid_at, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	payment.Stamp()

	query := `
		INSERT INTO payments (id, booking_id, type, provider_payment_id, status, amount_cents, currency, method, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Type,
		payment.ProviderPaymentID,
		payment.Status,
		payment.AmountCents,
		payment.Currency,
		payment.Method,
		payment.PaidAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("provider_payment_id", payment.ProviderPaymentID),
		)
		return fmt.Errorf("create payment %s: %w", payment.ProviderPaymentID, err)
	}

	return nil
}

func (r *paymentRepository) FindByProviderID(ctx context.Context, providerPaymentID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE provider_payment_id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, providerPaymentID))
	if err != nil {
		r.log.Error("Failed to find payment by provider ID",
			zap.Error(err),
			zap.String("provider_payment_id", providerPaymentID),
		)
		return nil, fmt.Errorf("find payment by provider ID %s: %w", providerPaymentID, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindLatestByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		r.log.Error("Failed to find latest payment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find latest payment for booking %s: %w", bookingID.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) HasPaidDeposit(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payments
			WHERE booking_id = $1 AND type = 'DEPOSIT' AND status = 'PAID'
		)
	`

	var paid bool
	err := r.db.QueryRow(ctx, query, bookingID).Scan(&paid)
	if err != nil {
		r.log.Error("Failed to check paid deposit",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("check paid deposit for booking %s: %w", bookingID.String(), err)
	}

	return paid, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, method *string, paidAt *time.Time) error {
	query := `
		UPDATE payments
		SET status = $2,
		    method = COALESCE($3, method),
		    paid_at = COALESCE($4, paid_at),
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, method, paidAt)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}

func (r *paymentRepository) FindRefundQueue(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumnsPrefixed + `
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE p.type = 'DEPOSIT' AND p.status = 'PAID' AND b.status = 'CANCELLED'
		ORDER BY p.paid_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load refund queue", zap.Error(err))
		return nil, fmt.Errorf("load refund queue: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

const paymentColumnsPrefixed = `p.id, p.booking_id, p.type, p.provider_payment_id, p.status, p.amount_cents, p.currency, p.method, p.paid_at, p.created_at, p.updated_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Type,
		&payment.ProviderPaymentID,
		&payment.Status,
		&payment.AmountCents,
		&payment.Currency,
		&payment.Method,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
