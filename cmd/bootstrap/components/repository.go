package components

import (
	"orderflow/internal/infra/repository"
	"orderflow/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(usecase.CustomerRepository)),
		),
	),
)
