package domain

import (
	"context"

	orderdomain "github.com/metalprom/catalog/internal/order/domain"
)

// Overview is the admin landing summary.
type Overview struct {
	ProductCount  int64               `json:"productCount"`
	LowStockCount int64               `json:"lowStockCount"`
	OrderCount    int64               `json:"orderCount"`
	Revenue       float64             `json:"revenue"`
	RecentOrders  []orderdomain.Order `json:"recentOrders"`
}

type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}
