package config_fx

import (
	"go.uber.org/fx"
	"tripmate/internal/infra"
)

var Module = fx.Provide(infra.LoadConfig)
