package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/product/domain"
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
		log:   p.Log.Named("product.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Product, error) {
	rows, err := s.repo.List(ctx, s.db, domain.Filter{
		Query:          strings.TrimSpace(req.Query),
		Category:       strings.TrimSpace(req.Category),
		Status:         strings.TrimSpace(req.Status),
		MaxPricePerTon: req.MaxPricePerTon,
		SortBy:         strings.TrimSpace(req.SortBy),
		OrderBy:        strings.TrimSpace(req.OrderBy),
		Limit:          req.Limit,
	})
	if err != nil {
		return nil, err
	}
	return domain.FromRows(rows), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	p := domain.FromRow(*row)
	return &p, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*domain.Page, error) {
	row, err := s.repo.FindBySlug(ctx, s.db, strings.TrimSpace(slugValue))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	p := domain.FromRow(*row)
	return &domain.Page{
		Product: p,
		SEO:     seo.ForProduct(p.SEOInput()),
	}, nil
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, domain.ErrInvalidName
	}
	if p.Stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	if p.Status == "" {
		p.Status = domain.StatusInStock
	}
	if !p.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	id := s.genID.Generate()
	p.ID = id.String()

	p.Slug = strings.TrimSpace(p.Slug)
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.Slug == "" {
		// Name transliterated to nothing; fall back to the id.
		p.Slug = id.String()
	}

	p.Normalize()

	row := domain.ToRow(p, time.Now())
	if err := s.repo.Create(ctx, s.db, &row); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("product created", zap.String("id", p.ID), zap.String("slug", p.Slug))
	created := domain.FromRow(row)
	return &created, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Product, error) {
	row, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	p := domain.FromRow(*row)
	if err := applyUpdate(&p, req); err != nil {
		return nil, err
	}
	p.Normalize()

	updated := domain.ToRow(p, time.Now())
	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	result := domain.FromRow(updated)
	return &result, nil
}

// Duplicate clones a product under a fresh id. The copy keeps every field but
// gets a disambiguated slug so the unique index cannot collide.
func (s *Service) Duplicate(ctx context.Context, id string) (*domain.Product, error) {
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	copyID := s.genID.Generate()

	p := domain.FromRow(*row)
	p.ID = copyID.String()
	p.Slug = fmt.Sprintf("%s-copy-%d", p.Slug, now.Unix())

	copied := domain.ToRow(p, now)
	if err := s.repo.Create(ctx, s.db, &copied); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("product duplicated", zap.String("source", id), zap.String("id", p.ID))
	result := domain.FromRow(copied)
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
	parsed, err := domain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	row, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func applyUpdate(p *domain.Product, req domain.UpdateRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.ErrInvalidName
		}
		p.Name = name
	}
	if req.Slug != nil {
		if v := strings.TrimSpace(*req.Slug); v != "" {
			p.Slug = slug.Make(v)
		}
	}
	if req.Article != nil {
		p.Article = strings.TrimSpace(*req.Article)
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Pricing != nil {
		p.Pricing = *req.Pricing
	}
	if req.PricePerTon != nil {
		p.PricePerTon = *req.PricePerTon
		if req.Pricing == nil {
			p.Pricing.Retail = 0
		}
	}
	if req.PricePerMeter != nil {
		p.PricePerMeter = *req.PricePerMeter
		if req.Pricing == nil {
			p.Pricing.PricePerMeter = 0
		}
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return domain.ErrInvalidStock
		}
		p.Stock = *req.Stock
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return domain.ErrInvalidStatus
		}
		p.Status = *req.Status
	}
	if req.SteelGrade != nil {
		p.SteelGrade = strings.TrimSpace(*req.SteelGrade)
	}
	if req.Dimensions != nil {
		p.Dimensions = strings.TrimSpace(*req.Dimensions)
	}
	if req.Attributes != nil {
		p.Attributes = *req.Attributes
	}
	if req.Image != nil {
		p.Image = strings.TrimSpace(*req.Image)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Documents != nil {
		p.Documents = *req.Documents
	}
	if req.SEO != nil {
		p.SEO = *req.SEO
	}
	return nil
}
