package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/category/domain"
	"github.com/metalprom/catalog/internal/seo"
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
		log:   p.Log.Named("category.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.ProductCounts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		c := domain.FromRow(row)
		c.Count = counts[c.Name]
		out = append(out, c)
	}
	return out, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*domain.Page, error) {
	row, err := s.repo.FindBySlug(ctx, s.db, strings.TrimSpace(slugValue))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	c := domain.FromRow(*row)
	counts, err := s.repo.ProductCounts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	c.Count = counts[c.Name]

	return &domain.Page{
		Category: c,
		SEO:      seo.ForCategory(c.SEOInput()),
	}, nil
}

func (s *Service) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, domain.ErrInvalidName
	}

	id := s.genID.Generate()
	c.ID = id.String()

	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	if c.Slug == "" {
		c.Slug = id.String()
	}

	row := domain.ToRow(c, time.Now())
	if err := s.repo.Create(ctx, s.db, &row); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("category created", zap.String("id", c.ID), zap.String("slug", c.Slug))
	created := domain.FromRow(row)
	return &created, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Category, error) {
	row, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	c := domain.FromRow(*row)
	oldName := c.Name

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		c.Name = name
	}
	if req.Slug != nil {
		if v := strings.TrimSpace(*req.Slug); v != "" {
			c.Slug = slug.Make(v)
		}
	}
	if req.Image != nil {
		c.Image = strings.TrimSpace(*req.Image)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.SEO != nil {
		c.SEO = *req.SEO
	}
	if req.ParentID != nil {
		c.ParentID = strings.TrimSpace(*req.ParentID)
	}

	updated := domain.ToRow(c, time.Now())

	// Products link to the category by name, so a rename has to cascade in
	// the same transaction or existing products silently fall out of the
	// category page.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, &updated); err != nil {
			return err
		}
		if c.Name != oldName {
			return s.repo.RenameProducts(ctx, tx, oldName, c.Name)
		}
		return nil
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	result := domain.FromRow(updated)
	return &result, nil
}

// Delete removes the category only. Linked products keep their category name
// and stay reachable by direct slug; no cascade happens on delete.
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
