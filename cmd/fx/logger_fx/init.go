package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripmate/internal/infra"
)

var Module = fx.Provide(provideLogger)

// provideLogger also installs the logger as zap's global, which services and
// response helpers log through.
func provideLogger(lc fx.Lifecycle, cfg *infra.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	undo := zap.ReplaceGlobals(logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			undo()
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
