package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Order, error)
}

// ListRequest narrows the listing; zero values are ignored.
type ListRequest struct {
	Status Status
	Limit  int
}

var ErrInvalidStatus = errors.New("invalid_status")
