package repository

import (
	"context"
	"fmt"

	"partner-booking/internal/data/entity"
	"partner-booking/pkg/database"

	"go.uber.org/zap"
)

type ConsentRepository interface {
	Create(ctx context.Context, record *entity.ConsentRecord) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.ConsentRecord, error)
	Count(ctx context.Context) (int64, error)
}

type consentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConsentRepository(db database.PgxIface, log *zap.Logger) ConsentRepository {
	return &consentRepository{
		db:  db,
		log: log.With(zap.String("repository", "consent")),
	}
}

func (r *consentRepository) Create(ctx context.Context, record *entity.ConsentRecord) error {
	record.Stamp()

	query := `
		INSERT INTO consent_records (id, email, kind, granted, locale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.Email,
		record.Kind,
		record.Granted,
		record.Locale,
		record.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create consent record",
			zap.Error(err),
			zap.String("kind", record.Kind),
		)
		return fmt.Errorf("create consent record: %w", err)
	}

	return nil
}

func (r *consentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.ConsentRecord, error) {
	query := `
		SELECT id, email, kind, granted, locale, created_at
		FROM consent_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find consent records", zap.Error(err))
		return nil, fmt.Errorf("find consent records: %w", err)
	}
	defer rows.Close()

	var records []*entity.ConsentRecord
	for rows.Next() {
		var record entity.ConsentRecord
		err := rows.Scan(
			&record.ID,
			&record.Email,
			&record.Kind,
			&record.Granted,
			&record.Locale,
			&record.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan consent row", zap.Error(err))
			return nil, fmt.Errorf("scan consent row: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *consentRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM consent_records`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count consent records", zap.Error(err))
		return 0, fmt.Errorf("count consent records: %w", err)
	}

	return count, nil
}
