package components

import (
	"registrar/internal/infra/cartstore"
	"registrar/internal/infra/readstore"
	"registrar/internal/infra/registry"
	"registrar/internal/infra/repository"
	"registrar/internal/pkg/config"
	"registrar/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		repository.NewRegistrationRepository,
		repository.NewOverrideRepository,
		readstore.NewCatalogReadStore,
		readstore.NewAccountReadStore,
		readstore.NewRegistrationReadStore,
		readstore.NewOverrideReadStore,
		fx.Annotate(
			readstore.NewOfferingReadStore,
			fx.As(new(registry.Source)),
		),
		registry.NewOfferingRegistry,
		NewCartStore,
	),
)

func NewCartStore(cfg config.Config) shared.CartStore {
	return cartstore.NewCartStore(cfg.Registration.CartTTL)
}
