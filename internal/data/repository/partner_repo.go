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

type PartnerRepository interface {
	Create(ctx context.Context, partner *entity.Partner) error
	Update(ctx context.Context, partner *entity.Partner) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Partner, error)
	FindAllActive(ctx context.Context) ([]*entity.Partner, error)
}

type partnerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPartnerRepository(db database.PgxIface, log *zap.Logger) PartnerRepository {
	return &partnerRepository{
		db:  db,
		log: log.With(zap.String("repository", "partner")),
	}
}

const partnerColumns = `id, name, slug, price_1pax_cents, price_2plus_cents, fee_percent, is_active, created_at, updated_at`

func (r *partnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	partner.Stamp()

	query := `
		INSERT INTO partners (id, name, slug, price_1pax_cents, price_2plus_cents, fee_percent, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		partner.ID,
		partner.Name,
		partner.Slug,
		partner.Price1PaxCents,
		partner.Price2PlusCents,
		partner.FeePercent,
		partner.IsActive,
		partner.CreatedAt,
		partner.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create partner",
			zap.Error(err),
			zap.String("slug", partner.Slug),
		)
		return fmt.Errorf("create partner %s: %w", partner.Slug, err)
	}

	return nil
}

func (r *partnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	partner.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE partners
		SET name = $2, slug = $3, price_1pax_cents = $4, price_2plus_cents = $5,
		    fee_percent = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		partner.ID,
		partner.Name,
		partner.Slug,
		partner.Price1PaxCents,
		partner.Price2PlusCents,
		partner.FeePercent,
		partner.IsActive,
		partner.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update partner",
			zap.Error(err),
			zap.String("partner_id", partner.ID.String()),
		)
		return fmt.Errorf("update partner %s: %w", partner.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("partner %s not found", partner.ID.String())
	}

	return nil
}

func (r *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

	partner, err := r.scanPartner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find partner by ID",
			zap.Error(err),
			zap.String("partner_id", id.String()),
		)
		return nil, fmt.Errorf("find partner by ID %s: %w", id.String(), err)
	}

	return partner, nil
}

func (r *partnerRepository) FindBySlug(ctx context.Context, slug string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE slug = $1`

	partner, err := r.scanPartner(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find partner by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find partner by slug %s: %w", slug, err)
	}

	return partner, nil
}

func (r *partnerRepository) FindAllActive(ctx context.Context) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE is_active ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active partners", zap.Error(err))
		return nil, fmt.Errorf("find active partners: %w", err)
	}
	defer rows.Close()

	var partners []*entity.Partner
	for rows.Next() {
		var partner entity.Partner
		err := rows.Scan(
			&partner.ID,
			&partner.Name,
			&partner.Slug,
			&partner.Price1PaxCents,
			&partner.Price2PlusCents,
			&partner.FeePercent,
			&partner.IsActive,
			&partner.CreatedAt,
			&partner.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan partner row", zap.Error(err))
			return nil, fmt.Errorf("scan partner row: %w", err)
		}
		partners = append(partners, &partner)
	}

	return partners, nil
}

func (r *partnerRepository) scanPartner(row pgx.Row) (*entity.Partner, error) {
	var partner entity.Partner
	err := row.Scan(
		&partner.ID,
		&partner.Name,
		&partner.Slug,
		&partner.Price1PaxCents,
		&partner.Price2PlusCents,
		&partner.FeePercent,
		&partner.IsActive,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &partner, nil
}
