package service

import (
	"context"

	"github.com/metalprom/catalog/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("order.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Order, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	rows, err := s.repo.List(ctx, s.db, string(req.Status), req.Limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FromRow(row))
	}
	return out, nil
}
