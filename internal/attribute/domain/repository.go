package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, row *Row) error
	Update(ctx context.Context, db *gorm.DB, row *Row) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Row, error)
	List(ctx context.Context, db *gorm.DB) ([]Row, error)
}
