package components

import (
	"orderflow/internal/infra/provider"
	"orderflow/internal/usecase"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			provider.NewCepClient,
			fx.As(new(usecase.AddressResolver)),
		),
		fx.Annotate(
			provider.NewRatesClient,
			fx.As(new(provider.RateSource)),
		),
	),
)
