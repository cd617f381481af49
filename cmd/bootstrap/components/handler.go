package components

import (
	"lendhub/internal/handler"
	"lendhub/internal/handler/api"
	"lendhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewRequestHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, item *api.ItemHandler, request *api.RequestHandler, report *api.ReportHandler) handler.Handlers {
			return handler.Handlers{
				Auth:    auth,
				Item:    item,
				Request: request,
				Report:  report,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
