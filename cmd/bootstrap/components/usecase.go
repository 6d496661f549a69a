package components

import (
	"registrar/internal/infra/notify"
	"registrar/internal/infra/sis"
	"registrar/internal/pkg/clock"
	"registrar/internal/pkg/config"
	"registrar/internal/pkg/ident"
	"registrar/internal/usecase/commands"
	"registrar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ident.NewUUIDGenerator,
	notify.NewLogNotifier,
	NewEnrollmentSync,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRegistrationEngine,
		commands.NewCartCommands,
		commands.NewOverrideCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRegistrationQueries,
		queries.NewOfferingQueries,
		queries.NewOverrideQueries,
	),
)

func NewEnrollmentSync(cfg config.Config) commands.EnrollmentSync {
	return sis.NewAdapter(cfg.SIS)
}
