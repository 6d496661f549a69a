package components

import (
	"registrar/internal/handler"
	"registrar/internal/handler/api"
	"registrar/internal/handler/middleware"
	"registrar/internal/pkg/config"
	"registrar/internal/usecase/commands"
	"registrar/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		NewRegistrationHandler,
		api.NewOfferingHandler,
		api.NewOverrideHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRegistrationHandler(
	regCommands commands.RegistrationCommands,
	regQueries queries.RegistrationQueries,
	cfg config.Config,
) *api.RegistrationHandler {
	return api.NewRegistrationHandler(regCommands, regQueries, cfg.Registration)
}

func NewHandlers(
	cart *api.CartHandler,
	registration *api.RegistrationHandler,
	offering *api.OfferingHandler,
	override *api.OverrideHandler,
) handler.Handlers {
	return handler.Handlers{
		Cart:         cart,
		Registration: registration,
		Offering:     offering,
		Override:     override,
	}
}
