package repository

import (
	"context"
	"errors"

	"github.com/metalprom/catalog/internal/category/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, row *domain.Row) error {
	return db.WithContext(ctx).Create(row).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, row *domain.Row) error {
	if row == nil || row.ID == 0 {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.Row{}).
		Where("id = ?", row.ID).
		Select("*").
		Omit("id").
		Updates(row).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Row{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Row, error) {
	var row domain.Row
	err := db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Row, error) {
	var row domain.Row
	err := db.WithContext(ctx).First(&row, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Row, error) {
	var rows []domain.Row
	if err := db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) RenameProducts(ctx context.Context, db *gorm.DB, oldName, newName string) error {
	return db.WithContext(ctx).
		Table("products").
		Where("category = ?", oldName).
		Update("category", newName).Error
}

func (r *repo) ProductCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var counts []struct {
		Category string
		Total    int64
	}
	err := db.WithContext(ctx).
		Table("products").
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(counts))
	for _, c := range counts {
		out[c.Category] = c.Total
	}
	return out, nil
}
