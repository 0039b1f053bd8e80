package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

type EstimateRepository struct {
	db *sql.DB
}

func NewEstimateRepository(db *sql.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func (r *EstimateRepository) Create(ctx context.Context, e *domain.SizeEstimate) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO size_estimates (request_id, height, weight, bmi, size, body_type, matched, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RequestID, e.Height, e.Weight, e.BMI, e.Size, e.BodyType, e.Matched, e.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create estimate: %w", err)
	}
	return result.LastInsertId()
}

func (r *EstimateRepository) ListRecent(ctx context.Context, limit int) ([]domain.SizeEstimate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, height, weight, bmi, size, body_type, matched, created_at
		 FROM size_estimates
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	defer rows.Close()

	var estimates []domain.SizeEstimate
	for rows.Next() {
		var e domain.SizeEstimate
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Height, &e.Weight, &e.BMI, &e.Size, &e.BodyType, &e.Matched, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan estimate: %w", err)
		}
		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}
