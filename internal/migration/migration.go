// Package migration keeps the schema in step with the row models at boot.
package migration

import (
	attributedomain "github.com/metalprom/catalog/internal/attribute/domain"
	categorydomain "github.com/metalprom/catalog/internal/category/domain"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	promodomain "github.com/metalprom/catalog/internal/promoslide/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&categorydomain.Row{},
		&productdomain.Row{},
		&attributedomain.Row{},
		&promodomain.Row{},
		&orderdomain.Row{},
	)
	if err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}
