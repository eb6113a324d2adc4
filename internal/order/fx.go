package order

import (
	"github.com/metalprom/catalog/internal/order/repository"
	"github.com/metalprom/catalog/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
