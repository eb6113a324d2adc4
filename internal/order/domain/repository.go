package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// List returns orders newest first.
	List(ctx context.Context, db *gorm.DB, status string, limit int) ([]Row, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	RevenueTotal(ctx context.Context, db *gorm.DB) (float64, error)
}
