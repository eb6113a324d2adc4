package repository

import (
	"context"

	"github.com/metalprom/catalog/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, status string, limit int) ([]domain.Row, error) {
	q := db.WithContext(ctx).Order("date DESC, id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []domain.Row
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Row{}).Count(&total).Error
	return total, err
}

func (r *repo) RevenueTotal(ctx context.Context, db *gorm.DB) (float64, error) {
	var total float64
	err := db.WithContext(ctx).
		Model(&domain.Row{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
