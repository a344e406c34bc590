package components

import (
	"go.uber.org/fx"

	"vending-server/internal/handler"
	"vending-server/internal/handler/api"
	"vending-server/internal/handler/middleware"
	"vending-server/internal/infra/metrics"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVendingHandler,
		api.NewSessionHandler,
		middleware.NewAuthMiddleware,
		func(v *api.VendingHandler, s *api.SessionHandler) handler.Handlers {
			return handler.Handlers{Vending: v, Session: s}
		},
		func(m *metrics.Metrics) handler.MetricsExporter { return m },
	),
	fx.Invoke(handler.NewRouter),
)
