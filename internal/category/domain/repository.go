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
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Row, error)
	List(ctx context.Context, db *gorm.DB) ([]Row, error)
	// RenameProducts points products linked by the old category name at the
	// new one. Linkage is by name, so a rename without this cascade would
	// silently orphan the products.
	RenameProducts(ctx context.Context, db *gorm.DB, oldName, newName string) error
	ProductCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error)
}
