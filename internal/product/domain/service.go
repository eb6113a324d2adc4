package domain

import (
	"context"
	"errors"

	"github.com/metalprom/catalog/internal/seo"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, req UpdateRequest) (*Product, error)
	Duplicate(ctx context.Context, id string) (*Product, error)
	Delete(ctx context.Context, id string) error
}

// ListRequest filters the admin and storefront product listings.
type ListRequest struct {
	Query          string
	Category       string
	Status         string
	MaxPricePerTon float64
	SortBy         string
	OrderBy        string
	Limit          int
}

// UpdateRequest carries a partial edit; nil fields keep their stored value.
type UpdateRequest struct {
	ID            string
	Name          *string
	Slug          *string
	Article       *string
	Category      *string
	Tags          *[]string
	PricePerTon   *float64
	PricePerMeter *float64
	Pricing       *Pricing
	Stock         *float64
	Status        *Status
	SteelGrade    *string
	Dimensions    *string
	Attributes    *[]Attribute
	Image         *string
	Description   *string
	Documents     *[]Document
	SEO           *seo.Descriptor
}

// Page is a storefront product view with its resolved SEO descriptor.
type Page struct {
	Product Product        `json:"product"`
	SEO     seo.Descriptor `json:"seo"`
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidStock  = errors.New("invalid_stock")
	ErrSlugTaken     = errors.New("slug_taken")
	ErrNotFound      = errors.New("not_found")
)
