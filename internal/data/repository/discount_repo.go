package repository

import (
	"context"
	"fmt"

	"partner-booking/internal/data/entity"
	"partner-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DiscountRepository interface {
	Create(ctx context.Context, code *entity.DiscountCode) error
	FindActiveByCode(ctx context.Context, code string) (*entity.DiscountCode, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.DiscountCode, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type discountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDiscountRepository(db database.PgxIface, log *zap.Logger) DiscountRepository {
	return &discountRepository{
		db:  db,
		log: log.With(zap.String("repository", "discount")),
	}
}

const discountColumns = `id, code, partner_id, amount_off_cents, percent_off, is_active, created_at, updated_at`

func (r *discountRepository) Create(ctx context.Context, code *entity.DiscountCode) error {
	code.Stamp()

	query := `
		INSERT INTO discount_codes (id, code, partner_id, amount_off_cents, percent_off, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.Code,
		code.PartnerID,
		code.AmountOffCents,
		code.PercentOff,
		code.IsActive,
		code.CreatedAt,
		code.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create discount code",
			zap.Error(err),
			zap.String("code", code.Code),
		)
		return fmt.Errorf("create discount code %s: %w", code.Code, err)
	}

	return nil
}

func (r *discountRepository) FindActiveByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_codes WHERE code = $1 AND is_active`

	var discount entity.DiscountCode
	err := r.db.QueryRow(ctx, query, code).Scan(
		&discount.ID,
		&discount.Code,
		&discount.PartnerID,
		&discount.AmountOffCents,
		&discount.PercentOff,
		&discount.IsActive,
		&discount.CreatedAt,
		&discount.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find discount code %s: %w", code, err)
	}

	return &discount, nil
}

func (r *discountRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.DiscountCode, error) {
	// Includes global codes, which apply to every partner.
	query := `
		SELECT ` + discountColumns + `
		FROM discount_codes
		WHERE partner_id = $1 OR partner_id IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, partnerID)
	if err != nil {
		r.log.Error("Failed to find discount codes by partner",
			zap.Error(err),
			zap.String("partner_id", partnerID.String()),
		)
		return nil, fmt.Errorf("find discount codes by partner %s: %w", partnerID.String(), err)
	}
	defer rows.Close()

	var codes []*entity.DiscountCode
	for rows.Next() {
		var discount entity.DiscountCode
		err := rows.Scan(
			&discount.ID,
			&discount.Code,
			&discount.PartnerID,
			&discount.AmountOffCents,
			&discount.PercentOff,
			&discount.IsActive,
			&discount.CreatedAt,
			&discount.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan discount code row", zap.Error(err))
			return nil, fmt.Errorf("scan discount code row: %w", err)
		}
		codes = append(codes, &discount)
	}

	return codes, nil
}

func (r *discountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE discount_codes SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate discount code",
			zap.Error(err),
			zap.String("discount_id", id.String()),
		)
		return fmt.Errorf("deactivate discount code %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount code %s not found", id.String())
	}

	return nil
}
