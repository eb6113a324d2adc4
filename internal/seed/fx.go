package seed

import (
	"github.com/metalprom/catalog/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(run),
)

func run(cfg config.Config, db *gorm.DB, log *zap.Logger) error {
	if !cfg.SeedOnBoot {
		return nil
	}

	if err := EnsureDefaults(db); err != nil {
		return err
	}
	log.Info("default catalog ensured")

	if cfg.IsProduction() {
		return nil
	}
	if err := EnsureDevOrders(db); err != nil {
		return err
	}
	log.Info("dev orders ensured")
	return nil
}
