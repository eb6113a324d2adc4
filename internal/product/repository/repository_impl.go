package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/metalprom/catalog/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

var sortable = map[string]string{
	"name":          "name",
	"price_per_ton": "price_per_ton",
	"updated_at":    "updated_at",
	"stock":         "stock",
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

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.Row, error) {
	stmt := db.WithContext(ctx).Model(&domain.Row{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		stmt = stmt.Where("LOWER(name) LIKE ? OR LOWER(article) LIKE ?", like, like)
	}
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.MaxPricePerTon > 0 {
		stmt = stmt.Where("price_per_ton <= ?", filter.MaxPricePerTon)
	}

	column, ok := sortable[filter.SortBy]
	if !ok {
		column = "updated_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.OrderBy, "asc") {
		direction = "ASC"
	}
	stmt = stmt.Order(column + " " + direction)

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	var rows []domain.Row
	if err := stmt.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CountByCategory(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var counts []struct {
		Category string
		Total    int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Row{}).
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

func (r *repo) Count(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	stmt := db.WithContext(ctx).Model(&domain.Row{})
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
