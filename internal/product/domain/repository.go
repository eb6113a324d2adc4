package domain

import (
	"context"

	"gorm.io/gorm"
)

// Filter narrows repository listings; zero values are ignored.
type Filter struct {
	Query          string
	Category       string
	Status         string
	MaxPricePerTon float64
	SortBy         string
	OrderBy        string
	Limit          int
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, row *Row) error
	Update(ctx context.Context, db *gorm.DB, row *Row) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Row, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Row, error)
	List(ctx context.Context, db *gorm.DB, filter Filter) ([]Row, error)
	CountByCategory(ctx context.Context, db *gorm.DB) (map[string]int64, error)
	Count(ctx context.Context, db *gorm.DB, status string) (int64, error)
}
