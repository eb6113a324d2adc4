package promoslide

import (
	"github.com/metalprom/catalog/internal/promoslide/repository"
	"github.com/metalprom/catalog/internal/promoslide/service"
	"go.uber.org/fx"
)

var Module = fx.Module("promoslide.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
