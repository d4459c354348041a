package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripmate/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// The logger parameter orders construction after the global logger is set.
func provideDB(lc fx.Lifecycle, cfg *infra.Config, _ *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}
