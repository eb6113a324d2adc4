package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/config"
	"github.com/metalprom/catalog/internal/logger"
	"github.com/metalprom/catalog/internal/migration"
	"github.com/metalprom/catalog/internal/seed"
	"github.com/metalprom/catalog/internal/server"
	"github.com/metalprom/catalog/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		seed.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
