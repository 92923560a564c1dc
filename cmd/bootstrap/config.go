package bootstrap

import (
	"orderflow/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ProvidersConfig { return cfg.Providers },
		func(cfg config.Config) config.IngestConfig { return cfg.Ingest },
	),
)
