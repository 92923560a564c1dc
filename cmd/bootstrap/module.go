package bootstrap

import (
	"orderflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.HandlerModule,
)
