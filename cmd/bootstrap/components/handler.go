package components

import (
	"pricing-panel/internal/handler"
	"pricing-panel/internal/handler/api"
	"pricing-panel/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewPricingHandler,
		api.NewWebhookHandler,
		middleware.NewSessionMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
