package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/promoslide/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("promoslide.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.PromoSlide, error) {
	rows, err := s.repo.List(ctx, s.db, activeOnly)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PromoSlide, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FromRow(row))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, slide domain.PromoSlide) (*domain.PromoSlide, error) {
	slide.Title = strings.TrimSpace(slide.Title)
	if slide.Title == "" {
		return nil, domain.ErrInvalidTitle
	}

	slide.ID = s.genID.Generate().String()
	row := domain.ToRow(slide, time.Now())
	if err := s.repo.Create(ctx, s.db, &row); err != nil {
		return nil, err
	}

	s.log.Info("promo slide created", zap.String("id", slide.ID), zap.Int("order", slide.SortOrder))
	created := domain.FromRow(row)
	return &created, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.PromoSlide, error) {
	row, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	slide := domain.FromRow(*row)
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.ErrInvalidTitle
		}
		slide.Title = title
	}
	if req.Description != nil {
		slide.Description = *req.Description
	}
	if req.Image != nil {
		slide.Image = strings.TrimSpace(*req.Image)
	}
	if req.ButtonText != nil {
		slide.ButtonText = *req.ButtonText
	}
	if req.Link != nil {
		slide.Link = strings.TrimSpace(*req.Link)
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		slide.SortOrder = *req.SortOrder
	}

	updated := domain.ToRow(slide, time.Now())
	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		return nil, err
	}

	result := domain.FromRow(updated)
	return &result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	row, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, row.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.Row, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	row, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row, nil
}
