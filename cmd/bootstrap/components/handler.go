package components

import (
	"orderflow/internal/handler"
	"orderflow/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewCustomerHandler,
		api.NewQueueHandler,
	),
	fx.Invoke(handler.NewRouter),
)
