package components

import (
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/usecase/availability"
	"campus-reservation/internal/usecase/commands"
	"campus-reservation/internal/usecase/lifecycle"
	"campus-reservation/internal/usecase/queries"
	"campus-reservation/internal/usecase/quota"
	"campus-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseLifecycleModule,
)

var usecaseBaseOption = fx.Provide(
	availability.NewChecker,
	quota.NewAccountant,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewFacilityQueries,
		queries.NewStatusQueries,
	),
)

var usecaseLifecycleModule = fx.Module("usecase/lifecycle",
	fx.Provide(
		lifecycle.NewSweeper,
		func(uow shared.UnitOfWork, pub shared.EventPublisher, clk clock.Clock, cfg config.Config) *lifecycle.Relay {
			return lifecycle.NewRelay(uow, pub, clk, cfg.Scheduler.RelayBatchSize)
		},
	),
)
