package components

import (
	"toolshare/internal/handler"
	"toolshare/internal/handler/api"
	"toolshare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewToolHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewAdminHandler,
		api.NewReportHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	User        *api.UserHandler
	Tool        *api.ToolHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Admin       *api.AdminHandler
	Report      *api.ReportHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		User:        p.User,
		Tool:        p.Tool,
		Reservation: p.Reservation,
		Review:      p.Review,
		Admin:       p.Admin,
		Report:      p.Report,
	}
}
