package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/attribute/domain"
	"github.com/metalprom/catalog/pkg/db"
	"github.com/metalprom/catalog/pkg/slug"
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
		log:   p.Log.Named("attribute.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.GlobalAttribute, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]domain.GlobalAttribute, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FromRow(row))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, a domain.GlobalAttribute) (*domain.GlobalAttribute, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return nil, domain.ErrInvalidName
	}
	if a.Type == "" {
		a.Type = domain.TypeText
	}
	if !a.Type.Valid() {
		return nil, domain.ErrInvalidType
	}
	if a.Type == domain.TypeSelect && len(a.Options) == 0 {
		return nil, domain.ErrMissingOptions
	}

	id := s.genID.Generate()
	a.ID = id.String()

	a.Slug = strings.TrimSpace(a.Slug)
	if a.Slug == "" {
		a.Slug = slug.Make(a.Name)
	}
	if a.Slug == "" {
		a.Slug = id.String()
	}

	row := domain.ToRow(a, time.Now())
	if err := s.repo.Create(ctx, s.db, &row); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("attribute created", zap.String("id", a.ID), zap.String("slug", a.Slug))
	created := domain.FromRow(row)
	return &created, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.GlobalAttribute, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(req.ID))
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

	a := domain.FromRow(*row)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		a.Name = name
	}
	if req.Slug != nil {
		if v := strings.TrimSpace(*req.Slug); v != "" {
			a.Slug = slug.Make(v)
		}
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, domain.ErrInvalidType
		}
		a.Type = *req.Type
	}
	if req.Options != nil {
		a.Options = *req.Options
	}
	if a.Type == domain.TypeSelect && len(a.Options) == 0 {
		return nil, domain.ErrMissingOptions
	}

	updated := domain.ToRow(a, time.Now())
	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	result := domain.FromRow(updated)
	return &result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	row, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, row.ID)
}
