package service

import (
	"context"

	"github.com/metalprom/catalog/internal/dashboard/domain"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentOrderLimit = 5

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Products productdomain.Repository
	Orders   orderdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	products productdomain.Repository
	orders   orderdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("dashboard.service"),
		products: p.Products,
		orders:   p.Orders,
	}
}

func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	productCount, err := s.products.Count(ctx, s.db, "")
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.Count(ctx, s.db, string(productdomain.StatusLowStock))
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orders.Count(ctx, s.db)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.RevenueTotal(ctx, s.db)
	if err != nil {
		return nil, err
	}
	recentRows, err := s.orders.List(ctx, s.db, "", recentOrderLimit)
	if err != nil {
		return nil, err
	}

	recent := make([]orderdomain.Order, 0, len(recentRows))
	for _, row := range recentRows {
		recent = append(recent, orderdomain.FromRow(row))
	}

	return &domain.Overview{
		ProductCount:  productCount,
		LowStockCount: lowStock,
		OrderCount:    orderCount,
		Revenue:       revenue,
		RecentOrders:  recent,
	}, nil
}
