package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context, activeOnly bool) ([]PromoSlide, error)
	Create(ctx context.Context, s PromoSlide) (*PromoSlide, error)
	Update(ctx context.Context, req UpdateRequest) (*PromoSlide, error)
	Delete(ctx context.Context, id string) error
}

// UpdateRequest carries a partial edit; nil fields keep their stored value.
type UpdateRequest struct {
	ID          string
	Title       *string
	Description *string
	Image       *string
	ButtonText  *string
	Link        *string
	IsActive    *bool
	SortOrder   *int
}

var (
	ErrInvalidTitle = errors.New("invalid_title")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
