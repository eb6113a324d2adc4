package domain

import (
	"context"
	"errors"

	"github.com/metalprom/catalog/internal/seo"
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	Create(ctx context.Context, c Category) (*Category, error)
	Update(ctx context.Context, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}

// UpdateRequest carries a partial edit; nil fields keep their stored value.
// Renaming cascades to the category column of linked products.
type UpdateRequest struct {
	ID          string
	Name        *string
	Slug        *string
	Image       *string
	Description *string
	SEO         *seo.Descriptor
	ParentID    *string
}

// Page is a storefront category view with its resolved SEO descriptor.
type Page struct {
	Category Category       `json:"category"`
	SEO      seo.Descriptor `json:"seo"`
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrSlugTaken   = errors.New("slug_taken")
	ErrNotFound    = errors.New("not_found")
)
