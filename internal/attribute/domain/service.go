package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]GlobalAttribute, error)
	Create(ctx context.Context, a GlobalAttribute) (*GlobalAttribute, error)
	Update(ctx context.Context, req UpdateRequest) (*GlobalAttribute, error)
	Delete(ctx context.Context, id string) error
}

// UpdateRequest carries a partial edit; nil fields keep their stored value.
type UpdateRequest struct {
	ID      string
	Name    *string
	Slug    *string
	Type    *Type
	Options *[]string
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidType    = errors.New("invalid_type")
	ErrMissingOptions = errors.New("missing_options")
	ErrSlugTaken      = errors.New("slug_taken")
	ErrNotFound       = errors.New("not_found")
)
