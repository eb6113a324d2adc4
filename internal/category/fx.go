package category

import (
	"github.com/metalprom/catalog/internal/category/repository"
	"github.com/metalprom/catalog/internal/category/service"
	"go.uber.org/fx"
)

var Module = fx.Module("category.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
